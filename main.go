package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"

	"github.com/NIAZpy/fashionfinds/auth"
	"github.com/NIAZpy/fashionfinds/config"
	"github.com/NIAZpy/fashionfinds/controllers"
	"github.com/NIAZpy/fashionfinds/routes"
	"github.com/NIAZpy/fashionfinds/services"
	"github.com/NIAZpy/fashionfinds/store"
)

func main() {
	cfg := config.Load()

	st := store.New(cfg.MongoURI, cfg.MongoDB)
	if cfg.MongoURI == "" {
		log.Println("Warning: MONGODB_URI not set, serving empty data")
	}

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		var err error
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Printf("Cloudinary disabled: %v", err)
			cld = nil
		}
	}

	ctrl := &controllers.Controller{
		Cfg:      cfg,
		Store:    st,
		Products: services.NewProductService(st, cfg.ProductsCollection),
		Posts:    services.NewPostService(st, cfg.PostsCollection),
		Auth:     auth.NewVerifier(cfg.AdminUsers, cfg.AdminUsername, cfg.AdminPassword, cfg.SecretKey),
		Cld:      cld,
	}

	r := routes.Setup(ctrl, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Printf("store close error: %v", err)
	}
}

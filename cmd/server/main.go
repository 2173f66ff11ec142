package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // fuseaux horaires disponibles même en image minimale

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/user/ztvplus/internal/config"
	"github.com/user/ztvplus/internal/handler"
	"github.com/user/ztvplus/internal/middleware"
	"github.com/user/ztvplus/internal/repository"
	"github.com/user/ztvplus/internal/router"
	"github.com/user/ztvplus/internal/service"
)

func main() {
	// Chargement des variables d'environnement
	if err := godotenv.Load(); err != nil {
		log.Println("pas de fichier .env, utilisation de l'environnement système")
	}

	cfg := config.Load()

	// Base de données
	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connexion à la base échouée : %v", err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	repos := repository.NewRepositories(db)

	// Redis (compteurs de vues)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("connexion Redis échouée : %v", err)
	}
	defer rdb.Close()

	views := service.NewViewService(service.NewRedisStore(rdb))

	// Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Session cookie : uniquement le nonce OAuth
	store := cookie.NewStore([]byte(cfg.AppSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   600, // le temps d'un aller-retour OAuth
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("ztvsession", store))

	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	h := handler.NewHandler(repos, cfg, views)

	// Purge périodique de l'historique
	cleanupSvc := service.NewCleanupService(repos)
	cleanupSvc.Start()

	router.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Démarrage en goroutine pour pouvoir écouter les signaux
	go func() {
		log.Printf("serveur démarré sur http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("démarrage du serveur échoué : %v", err)
		}
	}()

	// Arrêt propre sur SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("arrêt du serveur...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("arrêt forcé du serveur :", err)
	}

	log.Println("serveur arrêté")
}

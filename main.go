package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/outfitly/outfit-planner/api"
	"github.com/outfitly/outfit-planner/auth"
	"github.com/outfitly/outfit-planner/config"
	"github.com/outfitly/outfit-planner/store"
	"github.com/outfitly/outfit-planner/stylist"
	"github.com/outfitly/outfit-planner/utils"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Wire stores, stylist and session notifier
	wardrobe := store.NewMongoWardrobe()
	preferences := store.NewMongoPreferences()
	outfits := store.NewMongoOutfits()
	svc := stylist.NewService(wardrobe, preferences, stylist.NewGeminiGenerator())
	sessions := auth.NewNotifier()
	api.Init(wardrobe, preferences, outfits, svc, sessions)

	// Log session transitions as they happen
	events, _ := sessions.Subscribe()
	go func() {
		for e := range events {
			log.Printf("[SESSION] %s user=%s", e.Kind, e.UserID)
		}
	}()

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Auth routes
	http.HandleFunc("/api/health", corsMiddleware(api.HealthHandler))
	http.HandleFunc("/api/auth/register", corsMiddleware(api.RegisterHandler))
	http.HandleFunc("/api/auth/login", corsMiddleware(api.LoginHandler))
	http.HandleFunc("/api/auth/profile", corsMiddleware(api.AuthMiddleware(api.UpdateProfileHandler)))
	http.HandleFunc("/api/auth/logout", corsMiddleware(api.AuthMiddleware(api.LogoutHandler)))
	http.HandleFunc("/auth/google/login", corsMiddleware(api.GoogleLoginHandler))
	http.HandleFunc("/auth/google/callback", corsMiddleware(api.GoogleCallbackHandler))

	// Wardrobe routes
	http.HandleFunc("/api/wardrobe", corsMiddleware(api.AuthMiddleware(api.WardrobeHandler)))
	http.HandleFunc("/api/wardrobe/update", corsMiddleware(api.AuthMiddleware(api.UpdateWardrobeItemHandler)))
	http.HandleFunc("/api/wardrobe/delete", corsMiddleware(api.AuthMiddleware(api.DeleteWardrobeItemHandler)))
	http.HandleFunc("/api/wardrobe/image", corsMiddleware(api.AuthMiddleware(api.WardrobeImageHandler)))
	http.HandleFunc("/api/wardrobe/import", corsMiddleware(api.AuthMiddleware(api.ImportWardrobeItemHandler)))

	// Preferences and suggestions
	http.HandleFunc("/api/preferences", corsMiddleware(api.AuthMiddleware(api.PreferencesHandler)))
	http.HandleFunc("/api/suggest", corsMiddleware(api.AuthMiddleware(api.SuggestHandler)))
	http.HandleFunc("/api/advice/colors", corsMiddleware(api.AuthMiddleware(api.ColorAdviceHandler)))
	http.HandleFunc("/api/advice/accessories", corsMiddleware(api.AuthMiddleware(api.AccessoryAdviceHandler)))
	http.HandleFunc("/api/advice/layering", corsMiddleware(api.AuthMiddleware(api.LayeringAdviceHandler)))

	// Saved outfits
	http.HandleFunc("/api/outfits", corsMiddleware(api.AuthMiddleware(api.OutfitsHandler)))
	http.HandleFunc("/api/outfits/worn", corsMiddleware(api.AuthMiddleware(api.OutfitWornHandler)))
	http.HandleFunc("/api/outfits/delete", corsMiddleware(api.AuthMiddleware(api.DeleteOutfitHandler)))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

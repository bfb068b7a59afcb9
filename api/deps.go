package api

import (
	"github.com/outfitly/outfit-planner/auth"
	"github.com/outfitly/outfit-planner/store"
	"github.com/outfitly/outfit-planner/stylist"
)

// Handler dependencies, wired once at startup.
var (
	Wardrobe    store.WardrobeStore
	Preferences store.PreferencesStore
	Outfits     store.OutfitStore
	Stylist     *stylist.Service
	Sessions    *auth.Notifier
)

// Init wires the handler dependencies. Must be called before serving.
func Init(wardrobe store.WardrobeStore, prefs store.PreferencesStore, outfits store.OutfitStore, svc *stylist.Service, sessions *auth.Notifier) {
	Wardrobe = wardrobe
	Preferences = prefs
	Outfits = outfits
	Stylist = svc
	Sessions = sessions
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/utils"
)

// ImportRequest carries the product page to prefill an item from.
type ImportRequest struct {
	URL string `json:"url"`
}

// ImportResponse is a prefilled, unsaved wardrobe item draft. The client
// lets the user adjust it and then posts it to /api/wardrobe.
type ImportResponse struct {
	Item   models.WardrobeItem `json:"item"`
	Source string              `json:"source"`
}

var importClient = &http.Client{Timeout: 15 * time.Second}

// ImportWardrobeItemHandler fetches a product page and prefills a
// wardrobe item draft from its meta tags. Nothing is persisted here.
func ImportWardrobeItemHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Import Wardrobe Item API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, err := GetUserIDFromContext(r.Context()); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		utils.RespondError(w, &logMessageBuilder, "url is required", http.StatusBadRequest)
		return
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		utils.RespondError(w, &logMessageBuilder, "url must be http or https", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Importing from %s", req.URL))

	httpReq, err := http.NewRequestWithContext(r.Context(), http.MethodGet, req.URL, nil)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid url", http.StatusBadRequest)
		return
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (compatible; OutfitPlanner/1.0)")

	resp, err := importClient.Do(httpReq)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Fetch failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch product page", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Product page returned status %d", resp.StatusCode), http.StatusBadGateway)
		return
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to parse product page", http.StatusBadGateway)
		return
	}

	item := itemFromDocument(doc)
	if item.Name == "" {
		utils.RespondError(w, &logMessageBuilder, "Could not extract a product name from the page", http.StatusUnprocessableEntity)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Imported draft %q", item.Name))
	utils.RespondJSON(w, http.StatusOK, ImportResponse{Item: item, Source: req.URL})
}

// itemFromDocument builds a draft from og:/meta tags and a best-effort
// category guess from the page text.
func itemFromDocument(doc *goquery.Document) models.WardrobeItem {
	item := models.WardrobeItem{Season: models.SeasonAllSeason}

	if name, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		item.Name = strings.TrimSpace(name)
	}
	if item.Name == "" {
		item.Name = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if brand, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		item.Brand = strings.TrimSpace(brand)
	}

	item.Category = guessCategory(item.Name + " " + doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	return item
}

var categoryKeywords = []struct {
	category models.ClothingCategory
	words    []string
}{
	{models.CategoryDresses, []string{"dress", "gown"}},
	{models.CategoryOuterwear, []string{"jacket", "coat", "blazer", "hoodie"}},
	{models.CategoryShoes, []string{"shoe", "sneaker", "boot", "heel", "sandal", "loafer"}},
	{models.CategoryBottoms, []string{"jean", "trouser", "pant", "skirt", "short", "chino"}},
	{models.CategoryTops, []string{"shirt", "top", "tee", "t-shirt", "blouse", "sweater", "kurta"}},
	{models.CategoryAccessories, []string{"belt", "watch", "bag", "scarf", "cap", "hat", "sunglasses"}},
}

func guessCategory(text string) models.ClothingCategory {
	lower := strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				return entry.category
			}
		}
	}
	return models.CategoryTops
}

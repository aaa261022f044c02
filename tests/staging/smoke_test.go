//go:build staging

package staging

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

type recipeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type shoppingItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TestRecipeCalendarShoppingFlow creates a recipe, plans it a week ahead,
// checks the merged shopping items and cleans up after itself.
func TestRecipeCalendarShoppingFlow(t *testing.T) {
	marker := fmt.Sprintf("staging-%d", time.Now().UnixNano())

	resp, body := makeRequest(t, "POST", "/api/recipes", map[string]any{
		"name":         "Smoke Salad " + marker,
		"description":  "Created by the staging smoke test",
		"category":     "Salad",
		"difficulty":   "Easy",
		"ingredients":  []string{"Lettuce " + marker, "Lemon " + marker},
		"instructions": []string{"Toss"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create recipe: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var recipe recipeResponse
	decodeJSON(t, body, &recipe)

	day := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	slotPath := fmt.Sprintf("/api/calendar/%s/dinner", day)

	resp, body = makeRequest(t, "PUT", slotPath, map[string]string{"recipeId": recipe.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set meal: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var result struct {
		AddedItems []shoppingItemResponse `json:"addedItems"`
	}
	decodeJSON(t, body, &result)
	if len(result.AddedItems) != 2 {
		t.Errorf("Expected 2 merged shopping items, got %d", len(result.AddedItems))
	}

	resp, _ = makeRequest(t, "DELETE", "/api/recipes/"+recipe.ID, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("delete planned recipe: expected 409, got %d", resp.StatusCode)
	}

	resp, _ = makeRequest(t, "DELETE", slotPath, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("clear meal: expected 200, got %d", resp.StatusCode)
	}
	for _, item := range result.AddedItems {
		makeRequest(t, "DELETE", "/api/shopping-list/"+item.ID, nil)
	}
	resp, _ = makeRequest(t, "DELETE", "/api/recipes/"+recipe.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("delete recipe: expected 200, got %d", resp.StatusCode)
	}
}

func TestDashboard(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/dashboard", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var dash map[string]int
	decodeJSON(t, body, &dash)
	for _, key := range []string{"recipeCount", "mealsPlannedThisWeek", "shoppingPending", "shoppingTotal"} {
		if _, ok := dash[key]; !ok {
			t.Errorf("dashboard is missing %s", key)
		}
	}
}

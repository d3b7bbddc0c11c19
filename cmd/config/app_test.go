package config

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/testutil"
	"foodgram/pkg/jwt"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="

type apiFixture struct {
	t     *testing.T
	app   *fiber.App
	store *testutil.Store

	salt, flour entities.Ingredient
	breakfast   entities.Tag
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	store := testutil.NewStore()
	app := NewFiber()
	repos := Repositories{
		User:         store.Users(),
		Subscription: store.Subscriptions(),
		Tag:          store.Tags(),
		Ingredient:   store.Ingredients(),
		Recipe:       store.Recipes(),
	}
	Register(app, repos, &testutil.Images{}, jwt.NewJWTService("secret", time.Hour))

	return &apiFixture{
		t:         t,
		app:       app,
		store:     store,
		salt:      store.AddIngredient(entities.Ingredient{Name: "salt", MeasurementUnit: "g"}),
		flour:     store.AddIngredient(entities.Ingredient{Name: "flour", MeasurementUnit: "g"}),
		breakfast: store.AddTag(entities.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}),
	}
}

func (f *apiFixture) do(method, path string, body any, token string) *http.Response {
	f.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Token "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(f.t, err)
	return resp
}

func (f *apiFixture) decode(resp *http.Response, data any) envelope {
	f.t.Helper()
	var env envelope
	require.NoError(f.t, json.NewDecoder(resp.Body).Decode(&env))
	if data != nil {
		require.NoError(f.t, json.Unmarshal(env.Data, data))
	}
	return env
}

// signUp registers a user and returns its id and token.
func (f *apiFixture) signUp(username string) (uint, string) {
	f.t.Helper()
	resp := f.do("POST", "/api/users", map[string]string{
		"email":      username + "@example.com",
		"username":   username,
		"first_name": "First",
		"last_name":  "Last",
		"password":   "s3cret-pass",
	}, "")
	require.Equal(f.t, fiber.StatusCreated, resp.StatusCode)
	var user struct {
		ID uint `json:"id"`
	}
	f.decode(resp, &user)

	resp = f.do("POST", "/api/auth/token/login", map[string]string{
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	}, "")
	require.Equal(f.t, fiber.StatusOK, resp.StatusCode)
	var token struct {
		AuthToken string `json:"auth_token"`
	}
	f.decode(resp, &token)
	return user.ID, token.AuthToken
}

func (f *apiFixture) recipeBody(name string) map[string]any {
	return map[string]any{
		"ingredients": []map[string]any{
			{"id": f.flour.ID, "amount": 500},
			{"id": f.salt.ID, "amount": 5},
		},
		"tags":         []uint{f.breakfast.ID},
		"image":        pngDataURI,
		"name":         name,
		"text":         "Mix and bake.",
		"cooking_time": 40,
	}
}

func (f *apiFixture) createRecipe(token, name string) uint {
	f.t.Helper()
	resp := f.do("POST", "/api/recipes", f.recipeBody(name), token)
	require.Equal(f.t, fiber.StatusCreated, resp.StatusCode)
	var recipe struct {
		ID uint `json:"id"`
	}
	f.decode(resp, &recipe)
	return recipe.ID
}

func TestRecipeLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	_, aliceToken := f.signUp("alice")
	_, bobToken := f.signUp("bob")

	id := f.createRecipe(aliceToken, "Bread")
	path := fmt.Sprintf("/api/recipes/%d", id)

	resp := f.do("GET", path, nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var detail struct {
		Name        string `json:"name"`
		IsFavorited bool   `json:"is_favorited"`
		Author      struct {
			Username string `json:"username"`
		} `json:"author"`
		Ingredients []struct {
			Name   string `json:"name"`
			Amount int    `json:"amount"`
		} `json:"ingredients"`
	}
	env := f.decode(resp, &detail)
	assert.True(t, env.Status)
	assert.Equal(t, "Bread", detail.Name)
	assert.Equal(t, "alice", detail.Author.Username)
	assert.Len(t, detail.Ingredients, 2)

	update := map[string]any{
		"ingredients": []map[string]any{{"id": f.salt.ID, "amount": 1}},
		"tags":        []uint{f.breakfast.ID},
	}
	resp = f.do("PATCH", path, update, bobToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = f.do("DELETE", path, nil, bobToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = f.do("PATCH", path, update, aliceToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	f.decode(resp, &detail)
	assert.Equal(t, "Bread", detail.Name)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "salt", detail.Ingredients[0].Name)

	resp = f.do("DELETE", path, nil, aliceToken)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = f.do("GET", path, nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRecipeRequestErrors(t *testing.T) {
	f := newAPIFixture(t)
	_, token := f.signUp("alice")

	resp := f.do("POST", "/api/recipes", f.recipeBody("Bread"), "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := f.recipeBody("")
	resp = f.do("POST", "/api/recipes", body, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body = f.recipeBody("Bread")
	body["ingredients"] = []map[string]any{{"id": f.salt.ID, "amount": 5}, {"id": f.salt.ID, "amount": 3}}
	resp = f.do("POST", "/api/recipes", body, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	env := f.decode(resp, nil)
	assert.False(t, env.Status)
	assert.Equal(t, "ingredients must not repeat", env.Error)

	body = f.recipeBody("Bread")
	body["ingredients"] = []map[string]any{{"id": 999, "amount": 5}}
	resp = f.do("POST", "/api/recipes", body, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body = f.recipeBody("Bread")
	body["tags"] = []uint{999}
	resp = f.do("POST", "/api/recipes", body, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	assert.Zero(t, f.store.RecipeMutations)

	resp = f.do("GET", "/api/recipes/abc", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListRecipes(t *testing.T) {
	f := newAPIFixture(t)
	_, aliceToken := f.signUp("alice")
	_, bobToken := f.signUp("bob")
	for i := 1; i <= 8; i++ {
		f.createRecipe(aliceToken, fmt.Sprintf("Recipe %d", i))
	}
	favorite := f.createRecipe(aliceToken, "Favorite")
	resp := f.do("POST", fmt.Sprintf("/api/recipes/%d/favorite", favorite), nil, bobToken)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var page struct {
		Results []struct {
			Name        string `json:"name"`
			IsFavorited bool   `json:"is_favorited"`
		} `json:"results"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"total_pages"`
		} `json:"pagination"`
	}

	resp = f.do("GET", "/api/recipes", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	f.decode(resp, &page)
	assert.Len(t, page.Results, 6)
	assert.EqualValues(t, 9, page.Pagination.Total)
	assert.EqualValues(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, "Favorite", page.Results[0].Name)
	assert.False(t, page.Results[0].IsFavorited)

	resp = f.do("GET", "/api/recipes?page=2&limit=6", nil, "")
	f.decode(resp, &page)
	assert.Len(t, page.Results, 3)

	resp = f.do("GET", "/api/recipes?is_favorited=1", nil, bobToken)
	f.decode(resp, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Favorite", page.Results[0].Name)
	assert.True(t, page.Results[0].IsFavorited)

	resp = f.do("GET", "/api/recipes?is_favorited=1", nil, "")
	f.decode(resp, &page)
	assert.EqualValues(t, 9, page.Pagination.Total, "anonymous filter is ignored")

	resp = f.do("GET", "/api/recipes?tags=breakfast&tags=lunch", nil, "")
	f.decode(resp, &page)
	assert.EqualValues(t, 9, page.Pagination.Total)

	resp = f.do("GET", "/api/recipes?tags=dinner", nil, "")
	f.decode(resp, &page)
	assert.Empty(t, page.Results)
}

func TestFavoriteAndCartEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	_, aliceToken := f.signUp("alice")
	_, bobToken := f.signUp("bob")
	id := f.createRecipe(aliceToken, "Bread")

	for _, kind := range []string{"favorite", "shopping_cart"} {
		path := fmt.Sprintf("/api/recipes/%d/%s", id, kind)

		resp := f.do("POST", path, nil, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, kind)

		resp = f.do("POST", path, nil, bobToken)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, kind)
		var minified map[string]any
		f.decode(resp, &minified)
		assert.Equal(t, "Bread", minified["name"])
		assert.ElementsMatch(t, []string{"id", "name", "image", "cooking_time"}, keys(minified))

		resp = f.do("POST", path, nil, bobToken)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, kind)

		resp = f.do("DELETE", path, nil, bobToken)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode, kind)

		resp = f.do("DELETE", path, nil, bobToken)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, kind)

		resp = f.do("POST", fmt.Sprintf("/api/recipes/999/%s", kind), nil, bobToken)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, kind)
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestDownloadShoppingCart(t *testing.T) {
	f := newAPIFixture(t)
	_, aliceToken := f.signUp("alice")
	_, bobToken := f.signUp("bob")

	resp := f.do("GET", "/api/recipes/download_shopping_cart", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = f.do("GET", "/api/recipes/download_shopping_cart", nil, bobToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Shopping list:\n", string(raw))

	for _, name := range []string{"Bread", "Rolls"} {
		id := f.createRecipe(aliceToken, name)
		resp = f.do("POST", fmt.Sprintf("/api/recipes/%d/shopping_cart", id), nil, bobToken)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp = f.do("GET", "/api/recipes/download_shopping_cart", nil, bobToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="buying_list.txt"`, resp.Header.Get(fiber.HeaderContentDisposition))
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Shopping list:\n1. flour - 1000 g\n2. salt - 10 g\n", string(raw))
}

func TestUserEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	aliceID, aliceToken := f.signUp("alice")
	bobID, bobToken := f.signUp("bob")
	f.createRecipe(aliceToken, "Bread")
	f.createRecipe(aliceToken, "Rolls")

	resp := f.do("POST", "/api/users", map[string]string{
		"email": "alice@example.com", "username": "alice3", "first_name": "A", "last_name": "B", "password": "s3cret-pass",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "duplicate email")

	resp = f.do("POST", "/api/users", map[string]string{
		"email": "bad@example.com", "username": "has space", "first_name": "A", "last_name": "B", "password": "s3cret-pass",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "invalid username")

	resp = f.do("POST", "/api/auth/token/login", map[string]string{"email": "alice@example.com", "password": "nope"}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = f.do("GET", "/api/users/me", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = f.do("GET", "/api/users/me", nil, bobToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me map[string]any
	f.decode(resp, &me)
	assert.Equal(t, "bob", me["username"])
	assert.NotContains(t, me, "password")

	subscribe := fmt.Sprintf("/api/users/%d/subscribe", aliceID)
	resp = f.do("POST", subscribe+"?recipes_limit=1", nil, bobToken)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var sub struct {
		Username     string           `json:"username"`
		IsSubscribed bool             `json:"is_subscribed"`
		Recipes      []map[string]any `json:"recipes"`
		RecipesCount int              `json:"recipes_count"`
	}
	f.decode(resp, &sub)
	assert.Equal(t, "alice", sub.Username)
	assert.True(t, sub.IsSubscribed)
	assert.Len(t, sub.Recipes, 1)
	assert.Equal(t, 2, sub.RecipesCount)

	resp = f.do("POST", subscribe, nil, bobToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "duplicate subscription")

	resp = f.do("POST", fmt.Sprintf("/api/users/%d/subscribe", bobID), nil, bobToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "self subscription")

	resp = f.do("POST", "/api/users/999/subscribe", nil, bobToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = f.do("GET", "/api/users/subscriptions?recipes_limit=abc", nil, bobToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = f.do("GET", "/api/users/subscriptions", nil, bobToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var subs struct {
		Results []struct {
			Username string           `json:"username"`
			Recipes  []map[string]any `json:"recipes"`
		} `json:"results"`
	}
	f.decode(resp, &subs)
	require.Len(t, subs.Results, 1)
	assert.Len(t, subs.Results[0].Recipes, 2)

	resp = f.do("GET", fmt.Sprintf("/api/users/%d", aliceID), nil, bobToken)
	var alice map[string]any
	f.decode(resp, &alice)
	assert.Equal(t, true, alice["is_subscribed"])

	resp = f.do("DELETE", subscribe, nil, bobToken)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = f.do("DELETE", subscribe, nil, bobToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = f.do("POST", "/api/users/set_password", map[string]string{
		"current_password": "wrong", "new_password": "another-pass",
	}, bobToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = f.do("POST", "/api/users/set_password", map[string]string{
		"current_password": "s3cret-pass", "new_password": "another-pass",
	}, bobToken)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = f.do("POST", "/api/auth/token/logout", nil, bobToken)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do("GET", "/api/tags", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tags []map[string]any
	f.decode(resp, &tags)
	require.Len(t, tags, 1)
	assert.Equal(t, "breakfast", tags[0]["slug"])

	resp = f.do("GET", fmt.Sprintf("/api/tags/%d", f.breakfast.ID), nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = f.do("GET", "/api/tags/999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = f.do("GET", "/api/ingredients?search=SA", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var ingredients []map[string]any
	f.decode(resp, &ingredients)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "salt", ingredients[0]["name"])

	resp = f.do("GET", "/api/ingredients?name=fl", nil, "")
	f.decode(resp, &ingredients)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "flour", ingredients[0]["name"])

	resp = f.do("GET", "/api/ingredients/999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGuestRoutes(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do("GET", "/api/ping", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do("GET", "/metrics", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "go_goroutines")

	resp = f.do("GET", "/api/nowhere", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	env := f.decode(resp, nil)
	assert.False(t, env.Status)
}

func TestNewAppRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	app, err := NewApp(nil)
	require.ErrorIs(t, err, domain.ErrJWTSecretMissing)
	assert.Nil(t, app)
}

// Package testutil holds a stateful in-memory implementation of every
// repository. The HTTP tests in cmd/config drive multi-request flows through
// it, where each request must observe the writes of the ones before.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"foodgram/domain"
	"foodgram/entities"

	"gorm.io/gorm"
)

type Store struct {
	mu sync.Mutex

	seq         uint
	users       map[uint]*entities.User
	subs        []entities.Subscribe
	tags        map[uint]entities.Tag
	ingredients map[uint]entities.Ingredient
	recipes     map[uint]*entities.Recipe
	favorites   []entities.Favorite
	carts       []entities.ShoppingCart

	// RecipeMutations counts recipe create/update/delete calls that reached
	// the store.
	RecipeMutations int
}

func NewStore() *Store {
	return &Store{
		users:       map[uint]*entities.User{},
		tags:        map[uint]entities.Tag{},
		ingredients: map[uint]entities.Ingredient{},
		recipes:     map[uint]*entities.Recipe{},
	}
}

func (s *Store) next() uint {
	s.seq++
	return s.seq
}

// Seed helpers.

func (s *Store) AddTag(t entities.Tag) entities.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == 0 {
		t.ID = s.next()
	}
	s.tags[t.ID] = t
	return t
}

func (s *Store) AddIngredient(i entities.Ingredient) entities.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i.ID == 0 {
		i.ID = s.next()
	}
	s.ingredients[i.ID] = i
	return i
}

func (s *Store) Users() *UserRepo                 { return &UserRepo{s} }
func (s *Store) Subscriptions() *SubscriptionRepo { return &SubscriptionRepo{s} }
func (s *Store) Tags() *TagRepo                   { return &TagRepo{s} }
func (s *Store) Ingredients() *IngredientRepo     { return &IngredientRepo{s} }
func (s *Store) Recipes() *RecipeRepo             { return &RecipeRepo{s} }

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) || start < 0 {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type UserRepo struct{ *Store }

func (r *UserRepo) CreateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.next()
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *UserRepo) GetUserByID(_ context.Context, id uint) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *UserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *UserRepo) GetUsers(_ context.Context, page, limit int) ([]*entities.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entities.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, page, limit), int64(len(all)), nil
}

func (r *UserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Password = passwordHash
	}
	return nil
}

type SubscriptionRepo struct{ *Store }

func (r *SubscriptionRepo) CreateSubscription(_ context.Context, userID, authorID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sub := range r.subs {
		if sub.UserID == userID && sub.AuthorID == authorID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.subs = append(r.subs, entities.Subscribe{ID: r.next(), UserID: userID, AuthorID: authorID})
	return nil
}

func (r *SubscriptionRepo) DeleteSubscription(_ context.Context, userID, authorID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, sub := range r.subs {
		if sub.UserID == userID && sub.AuthorID == authorID {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *SubscriptionRepo) IsSubscribed(_ context.Context, userID, authorID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sub := range r.subs {
		if sub.UserID == userID && sub.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *SubscriptionRepo) GetSubscribedAuthorIDs(_ context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := map[uint]bool{}
	if userID == 0 {
		return res, nil
	}
	wanted := map[uint]bool{}
	for _, id := range authorIDs {
		wanted[id] = true
	}
	for _, sub := range r.subs {
		if sub.UserID == userID && wanted[sub.AuthorID] {
			res[sub.AuthorID] = true
		}
	}
	return res, nil
}

func (r *SubscriptionRepo) GetSubscribedAuthors(_ context.Context, userID uint, page, limit int) ([]*entities.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var authors []*entities.User
	for i := len(r.subs) - 1; i >= 0; i-- {
		sub := r.subs[i]
		if sub.UserID != userID {
			continue
		}
		if u, ok := r.users[sub.AuthorID]; ok {
			copied := *u
			authors = append(authors, &copied)
		}
	}
	return paginate(authors, page, limit), int64(len(authors)), nil
}

type TagRepo struct{ *Store }

func (r *TagRepo) GetTags(_ context.Context) ([]entities.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tags := make([]entities.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

func (r *TagRepo) GetTagByID(_ context.Context, id uint) (*entities.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tags[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *TagRepo) GetTagsByIDs(_ context.Context, ids []uint) ([]entities.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var tags []entities.Tag
	for _, id := range ids {
		if t, ok := r.tags[id]; ok {
			tags = append(tags, t)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

type IngredientRepo struct{ *Store }

func (r *IngredientRepo) SearchIngredients(_ context.Context, prefix string) ([]entities.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []entities.Ingredient
	for _, i := range r.ingredients {
		if strings.HasPrefix(strings.ToLower(i.Name), strings.ToLower(prefix)) {
			res = append(res, i)
		}
	}
	sort.Slice(res, func(a, b int) bool {
		if res[a].Name == res[b].Name {
			return res[a].ID < res[b].ID
		}
		return res[a].Name < res[b].Name
	})
	return res, nil
}

func (r *IngredientRepo) GetIngredientByID(_ context.Context, id uint) (*entities.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &i, nil
}

func (r *IngredientRepo) GetIngredientsByIDs(_ context.Context, ids []uint) ([]entities.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []entities.Ingredient
	for _, id := range ids {
		if i, ok := r.ingredients[id]; ok {
			res = append(res, i)
		}
	}
	return res, nil
}

type RecipeRepo struct{ *Store }

func (r *RecipeRepo) storeItems(recipeID uint, items []entities.RecipeIngredient) []entities.RecipeIngredient {
	rows := make([]entities.RecipeIngredient, 0, len(items))
	for _, item := range items {
		rows = append(rows, entities.RecipeIngredient{
			ID:           r.next(),
			RecipeID:     recipeID,
			IngredientID: item.IngredientID,
			Amount:       item.Amount,
		})
	}
	return rows
}

func (r *RecipeRepo) CreateRecipe(_ context.Context, recipe *entities.Recipe, tags []entities.Tag, items []entities.RecipeIngredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.RecipeMutations++
	recipe.ID = r.next()
	stored := *recipe
	stored.Author = nil
	stored.Tags = append([]entities.Tag(nil), tags...)
	stored.RecipeIngredients = r.storeItems(recipe.ID, items)
	r.recipes[recipe.ID] = &stored
	return nil
}

func (r *RecipeRepo) UpdateRecipe(_ context.Context, recipe *entities.Recipe, tags []entities.Tag, items []entities.RecipeIngredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.RecipeMutations++
	stored, ok := r.recipes[recipe.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = recipe.Name
	stored.Image = recipe.Image
	stored.Text = recipe.Text
	stored.CookingTime = recipe.CookingTime
	stored.Tags = append([]entities.Tag(nil), tags...)
	stored.RecipeIngredients = r.storeItems(recipe.ID, items)
	return nil
}

func (r *RecipeRepo) DeleteRecipe(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.RecipeMutations++
	if _, ok := r.recipes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.recipes, id)

	favorites := r.favorites[:0]
	for _, f := range r.favorites {
		if f.RecipeID != id {
			favorites = append(favorites, f)
		}
	}
	r.favorites = favorites

	carts := r.carts[:0]
	for _, c := range r.carts {
		if c.RecipeID != id {
			carts = append(carts, c)
		}
	}
	r.carts = carts
	return nil
}

// detailed returns a copy of the stored recipe with associations loaded.
// Callers hold the lock.
func (r *RecipeRepo) detailed(stored *entities.Recipe) *entities.Recipe {
	copied := *stored
	if u, ok := r.users[stored.AuthorID]; ok {
		author := *u
		copied.Author = &author
	}
	copied.Tags = append([]entities.Tag(nil), stored.Tags...)
	sort.Slice(copied.Tags, func(i, j int) bool { return copied.Tags[i].ID < copied.Tags[j].ID })
	copied.RecipeIngredients = make([]entities.RecipeIngredient, 0, len(stored.RecipeIngredients))
	for _, item := range stored.RecipeIngredients {
		if ing, ok := r.ingredients[item.IngredientID]; ok {
			ing := ing
			item.Ingredient = &ing
		}
		copied.RecipeIngredients = append(copied.RecipeIngredients, item)
	}
	return &copied
}

func (r *RecipeRepo) GetRecipeByID(_ context.Context, id uint) (*entities.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.detailed(stored), nil
}

func (r *RecipeRepo) sortedRecipes() []*entities.Recipe {
	all := make([]*entities.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		all = append(all, recipe)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all
}

func (r *RecipeRepo) matches(recipe *entities.Recipe, filter domain.RecipeFilter) bool {
	if filter.AuthorID != 0 && recipe.AuthorID != filter.AuthorID {
		return false
	}
	if len(filter.Tags) > 0 {
		found := false
		for _, t := range recipe.Tags {
			for _, slug := range filter.Tags {
				if t.Slug == slug {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	if filter.ViewerID != 0 && filter.IsFavorited && !r.hasFavorite(filter.ViewerID, recipe.ID) {
		return false
	}
	if filter.ViewerID != 0 && filter.IsInShoppingCart && !r.hasCart(filter.ViewerID, recipe.ID) {
		return false
	}
	return true
}

func (r *RecipeRepo) GetRecipes(_ context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entities.Recipe
	for _, recipe := range r.sortedRecipes() {
		if r.matches(recipe, filter) {
			matched = append(matched, r.detailed(recipe))
		}
	}
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func (r *RecipeRepo) GetRecipesByAuthor(_ context.Context, authorID uint, limit int) ([]*entities.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*entities.Recipe
	for _, recipe := range r.sortedRecipes() {
		if limit >= 0 && len(res) >= limit {
			break
		}
		if recipe.AuthorID == authorID {
			copied := *recipe
			res = append(res, &copied)
		}
	}
	return res, nil
}

func (r *RecipeRepo) CountRecipesByAuthor(_ context.Context, authorID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, recipe := range r.recipes {
		if recipe.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (r *RecipeRepo) hasFavorite(userID, recipeID uint) bool {
	for _, f := range r.favorites {
		if f.UserID == userID && f.RecipeID == recipeID {
			return true
		}
	}
	return false
}

func (r *RecipeRepo) hasCart(userID, recipeID uint) bool {
	for _, c := range r.carts {
		if c.UserID == userID && c.RecipeID == recipeID {
			return true
		}
	}
	return false
}

func (r *RecipeRepo) AddFavorite(_ context.Context, userID, recipeID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasFavorite(userID, recipeID) {
		return gorm.ErrDuplicatedKey
	}
	r.favorites = append(r.favorites, entities.Favorite{ID: r.next(), UserID: userID, RecipeID: recipeID})
	return nil
}

func (r *RecipeRepo) RemoveFavorite(_ context.Context, userID, recipeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.favorites {
		if f.UserID == userID && f.RecipeID == recipeID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *RecipeRepo) IsFavorited(_ context.Context, userID, recipeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasFavorite(userID, recipeID), nil
}

func (r *RecipeRepo) GetFavoritedRecipeIDs(_ context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := map[uint]bool{}
	for _, id := range recipeIDs {
		if userID != 0 && r.hasFavorite(userID, id) {
			res[id] = true
		}
	}
	return res, nil
}

func (r *RecipeRepo) AddToShoppingCart(_ context.Context, userID, recipeID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasCart(userID, recipeID) {
		return gorm.ErrDuplicatedKey
	}
	r.carts = append(r.carts, entities.ShoppingCart{ID: r.next(), UserID: userID, RecipeID: recipeID})
	return nil
}

func (r *RecipeRepo) RemoveFromShoppingCart(_ context.Context, userID, recipeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.carts {
		if c.UserID == userID && c.RecipeID == recipeID {
			r.carts = append(r.carts[:i], r.carts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *RecipeRepo) IsInShoppingCart(_ context.Context, userID, recipeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasCart(userID, recipeID), nil
}

func (r *RecipeRepo) GetShoppingCartRecipeIDs(_ context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := map[uint]bool{}
	for _, id := range recipeIDs {
		if userID != 0 && r.hasCart(userID, id) {
			res[id] = true
		}
	}
	return res, nil
}

func (r *RecipeRepo) GetShoppingListRows(_ context.Context, userID uint) ([]entities.ShoppingListRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []entities.ShoppingListRow
	for _, c := range r.carts {
		if c.UserID != userID {
			continue
		}
		recipe, ok := r.recipes[c.RecipeID]
		if !ok {
			continue
		}
		for _, item := range recipe.RecipeIngredients {
			ing := r.ingredients[item.IngredientID]
			rows = append(rows, entities.ShoppingListRow{
				Name:            ing.Name,
				MeasurementUnit: ing.MeasurementUnit,
				Amount:          item.Amount,
			})
		}
	}
	return rows, nil
}

package ingredient

import (
	"context"
	"errors"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	mockingredient "foodgram/internal/mocks/ingredient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var errStore = errors.New("connection reset")

func TestSearchIngredients(t *testing.T) {
	testCases := []struct {
		name       string
		prefix     string
		buildStubs func(repo *mockingredient.MockIngredientRepository)
		check      func(t *testing.T, res []domain.IngredientResponse, err error)
	}{
		{
			name:   "TrimsPrefix",
			prefix: " SA ",
			buildStubs: func(repo *mockingredient.MockIngredientRepository) {
				repo.EXPECT().SearchIngredients(gomock.Any(), gomock.Eq("SA")).Times(1).
					Return([]entities.Ingredient{{ID: 2, Name: "salt", MeasurementUnit: "g"}}, nil)
			},
			check: func(t *testing.T, res []domain.IngredientResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, []domain.IngredientResponse{{ID: 2, Name: "salt", MeasurementUnit: "g"}}, res)
			},
		},
		{
			name:   "NoMatches",
			prefix: "x",
			buildStubs: func(repo *mockingredient.MockIngredientRepository) {
				repo.EXPECT().SearchIngredients(gomock.Any(), gomock.Eq("x")).Times(1).Return(nil, nil)
			},
			check: func(t *testing.T, res []domain.IngredientResponse, err error) {
				require.NoError(t, err)
				assert.NotNil(t, res)
				assert.Empty(t, res)
			},
		},
		{
			name:   "StoreFailure",
			prefix: "s",
			buildStubs: func(repo *mockingredient.MockIngredientRepository) {
				repo.EXPECT().SearchIngredients(gomock.Any(), gomock.Any()).Times(1).Return(nil, errStore)
			},
			check: func(t *testing.T, res []domain.IngredientResponse, err error) {
				require.ErrorIs(t, err, errStore)
				assert.Nil(t, res)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mockingredient.NewMockIngredientRepository(gomock.NewController(t))
			tc.buildStubs(repo)

			res, err := NewIngredientService(repo).SearchIngredients(context.Background(), tc.prefix)
			tc.check(t, res, err)
		})
	}
}

func TestGetIngredientByID(t *testing.T) {
	testCases := []struct {
		name       string
		buildStubs func(repo *mockingredient.MockIngredientRepository)
		want       domain.IngredientResponse
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *mockingredient.MockIngredientRepository) {
				repo.EXPECT().GetIngredientByID(gomock.Any(), gomock.Eq(uint(2))).Times(1).
					Return(&entities.Ingredient{ID: 2, Name: "salt", MeasurementUnit: "g"}, nil)
			},
			want: domain.IngredientResponse{ID: 2, Name: "salt", MeasurementUnit: "g"},
		},
		{
			name: "NotFound",
			buildStubs: func(repo *mockingredient.MockIngredientRepository) {
				repo.EXPECT().GetIngredientByID(gomock.Any(), gomock.Eq(uint(2))).Times(1).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: domain.ErrIngredientNotFound,
		},
		{
			name: "StoreFailure",
			buildStubs: func(repo *mockingredient.MockIngredientRepository) {
				repo.EXPECT().GetIngredientByID(gomock.Any(), gomock.Eq(uint(2))).Times(1).Return(nil, errStore)
			},
			wantErr: errStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mockingredient.NewMockIngredientRepository(gomock.NewController(t))
			tc.buildStubs(repo)

			res, err := NewIngredientService(repo).GetIngredientByID(context.Background(), 2)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

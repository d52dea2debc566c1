package checks

import (
	"context"
	"testing"

	"housing-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckGameData(t *testing.T) {
	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "housing").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "housing", mock.Anything).Return(emptyListing())

		missing, err := CheckGameData(context.Background(), mockClient, "housing")
		assert.NoError(t, err)
		assert.Equal(t, []string{"Item.json", "HousingPreset.json"}, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "housing").Return(true, nil)
		for _, filename := range RequiredGameDataFiles {
			key := "gamedata/" + filename
			mockClient.On("ListObjects", mock.Anything, "housing", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == key
			})).Return(listing(key))
		}

		missing, err := CheckGameData(context.Background(), mockClient, "housing")
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Prefix Match Only", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "housing").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "housing", mock.Anything).Return(listing("gamedata/Item.json.bak"))

		missing, err := CheckGameData(context.Background(), mockClient, "housing")
		assert.NoError(t, err)
		assert.Len(t, missing, len(RequiredGameDataFiles))
	})
}

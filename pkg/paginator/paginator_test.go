package paginator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcaco95/project-spark-blueprint-admin/pkg/paginator"
)

func TestClamp(t *testing.T) {
	page, perPage := paginator.Clamp(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, paginator.DefaultPerPage, perPage)

	page, perPage = paginator.Clamp(-5, 1000)
	assert.Equal(t, 1, page)
	assert.Equal(t, paginator.MaxPerPage, perPage)

	page, perPage = paginator.Clamp(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, perPage)
}

func TestNewPage_ComputesPageCount(t *testing.T) {
	page := paginator.NewPage([]string{"a", "b"}, 11, 1, 5)
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, 2)
}

func TestNewPage_NilItemsBecomeEmptySlice(t *testing.T) {
	page := paginator.NewPage[string](nil, 0, 1, 10)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Pages)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, paginator.Offset(1, 10))
	assert.Equal(t, 40, paginator.Offset(5, 10))
}

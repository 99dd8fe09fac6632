package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveVia(t, "/x", 25, 200)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingExplicit(t *testing.T) {
	p := resolveVia(t, "/x?page=3&per_page=40", 25, 200)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 40, p.PerPage)
	assert.Equal(t, 80, p.Offset)
	assert.Equal(t, 40, p.Limit)
}

func TestResolvePagingLimitAliasAndCap(t *testing.T) {
	p := resolveVia(t, "/x?limit=50", 25, 200)
	assert.Equal(t, 50, p.PerPage)

	capped := resolveVia(t, "/x?per_page=9999", 25, 200)
	assert.Equal(t, 200, capped.PerPage)
}

func TestResolvePagingGarbage(t *testing.T) {
	p := resolveVia(t, "/x?page=-2&per_page=zero", 25, 200)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	meta := BuildPagination(p, 35, 10)

	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, 10, meta.Count)

	last := BuildPagination(Paging{Page: 4, PerPage: 10}, 35, 5)
	assert.False(t, last.HasNext)
}

package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type gadget struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Capacity int    `gorm:"not null"`
	Kind     string `gorm:"not null"`
}

var gadgetSort = SortSpec{
	Default: "name",
	Keys: map[string]string{
		"name":     "name",
		"capacity": "capacity",
	},
}

func setupPaginateDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&gadget{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	for i := 1; i <= 25; i++ {
		kind := "widget"
		if i%2 == 0 {
			kind = "sprocket"
		}
		db.Create(&gadget{Name: fmt.Sprintf("g%02d", i), Capacity: i % 5, Kind: kind})
	}
	return db
}

func TestPaginateBoundsAndMetadata(t *testing.T) {
	db := setupPaginateDB(t)

	result, err := Paginate[gadget](db, Params{Page: 1, Limit: 10}, gadgetSort, nil)
	assert.NoError(t, err)
	assert.Len(t, result.Data, 10)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.Limit)

	// last page holds the remainder
	result, err = Paginate[gadget](db, Params{Page: 3, Limit: 10}, gadgetSort, nil)
	assert.NoError(t, err)
	assert.Len(t, result.Data, 5)

	// past the end is an empty page, not an error
	result, err = Paginate[gadget](db, Params{Page: 9, Limit: 10}, gadgetSort, nil)
	assert.NoError(t, err)
	assert.Len(t, result.Data, 0)
	assert.Equal(t, int64(25), result.Total)
}

func TestPaginateNormalizesRawParams(t *testing.T) {
	db := setupPaginateDB(t)

	result, err := Paginate[gadget](db, Params{Page: 0, Limit: 0}, gadgetSort, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Len(t, result.Data, 20)
	assert.Equal(t, 2, result.TotalPages)
}

func TestPaginateFiltersCompose(t *testing.T) {
	db := setupPaginateDB(t)

	// single filter
	kindOnly, err := Paginate[gadget](db, Params{Limit: 100}, gadgetSort, nil,
		TextContains("kind", "sprocket"),
	)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), kindOnly.Total)

	// AND composition: both filters must hold
	capacity := 3
	both, err := Paginate[gadget](db, Params{Limit: 100}, gadgetSort, nil,
		TextContains("kind", "sprocket"),
		EqualsInt("capacity", &capacity),
	)
	assert.NoError(t, err)
	for _, g := range both.Data {
		assert.Equal(t, "sprocket", g.Kind)
		assert.Equal(t, 3, g.Capacity)
	}
	assert.LessOrEqual(t, both.Total, kindOnly.Total)

	// order of application does not matter
	swapped, err := Paginate[gadget](db, Params{Limit: 100}, gadgetSort, nil,
		EqualsInt("capacity", &capacity),
		TextContains("kind", "sprocket"),
	)
	assert.NoError(t, err)
	assert.Equal(t, both.Total, swapped.Total)
}

func TestPaginateSkipsNilScopes(t *testing.T) {
	db := setupPaginateDB(t)

	result, err := Paginate[gadget](db, Params{Limit: 100}, gadgetSort, nil,
		TextContains("kind", ""),
		TextContains("name", "   "),
		EqualsInt("capacity", nil),
		EqualsUint("id", nil),
		EqualsTime("id", nil),
		EnumEquals("kind", "", false),
	)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
}

func TestPaginateSortFallback(t *testing.T) {
	db := setupPaginateDB(t)

	bogus, err := Paginate[gadget](db, Params{Limit: 5, SortBy: "nosuchkey", SortDirection: "asc"}, gadgetSort, nil)
	assert.NoError(t, err)
	byDefault, err := Paginate[gadget](db, Params{Limit: 5, SortBy: "name", SortDirection: "asc"}, gadgetSort, nil)
	assert.NoError(t, err)
	assert.Equal(t, byDefault.Data, bogus.Data)

	asc, err := Paginate[gadget](db, Params{Limit: 25, SortBy: "capacity", SortDirection: "asc"}, gadgetSort, nil)
	assert.NoError(t, err)
	for i := 1; i < len(asc.Data); i++ {
		assert.LessOrEqual(t, asc.Data[i-1].Capacity, asc.Data[i].Capacity)
	}

	desc, err := Paginate[gadget](db, Params{Limit: 25, SortBy: "capacity", SortDirection: "backwards"}, gadgetSort, nil)
	assert.NoError(t, err)
	for i := 1; i < len(desc.Data); i++ {
		assert.GreaterOrEqual(t, desc.Data[i-1].Capacity, desc.Data[i].Capacity)
	}
}

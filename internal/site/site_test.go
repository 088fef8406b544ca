package site_test

import (
	"testing"

	"github.com/rohmanhakim/park-finder/internal/site"
	"github.com/stretchr/testify/assert"
)

func TestSite_Info(t *testing.T) {
	tests := []struct {
		name string
		site site.Site
		want string
	}{
		{
			name: "fully populated",
			site: site.NewSite("Isle Royale", "National Park", "Houghton, MI", "49931", "(906) 482-0984"),
			want: "Isle Royale (National Park): Houghton, MI 49931",
		},
		{
			name: "placeholders render verbatim",
			site: site.NewSite(site.NoName, site.NoCategory, site.NoCity+", "+site.NoState, site.NoZipcode, site.NoPhone),
			want: "no name (no category): no city, no state no zipcode",
		},
		{
			name: "empty fields stay empty",
			site: site.NewSite("Keweenaw", "", "Calumet, MI", "49913", ""),
			want: "Keweenaw (): Calumet, MI 49913",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.site.Info())
			assert.Equal(t, tt.want, tt.site.String())
		})
	}
}

func TestSite_Accessors(t *testing.T) {
	s := site.NewSite("Sleeping Bear Dunes", "National Lakeshore", "Empire, MI", "49630", "(231) 326-4700")

	assert.Equal(t, "Sleeping Bear Dunes", s.Name())
	assert.Equal(t, "National Lakeshore", s.Category())
	assert.Equal(t, "Empire, MI", s.Address())
	assert.Equal(t, "49630", s.Zipcode())
	assert.Equal(t, "(231) 326-4700", s.Phone())
}

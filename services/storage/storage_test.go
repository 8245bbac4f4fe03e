package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned delivery url",
			url:  "https://res.cloudinary.com/demo/image/upload/v1700000000/rooms/seaside.jpg",
			want: "rooms/seaside",
		},
		{
			name: "unversioned delivery url",
			url:  "https://res.cloudinary.com/demo/image/upload/rooms/seaside.png",
			want: "rooms/seaside",
		},
		{
			name: "nested folders",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/hotels/rooms/deluxe.webp",
			want: "hotels/rooms/deluxe",
		},
		{
			name: "folder starting with v is not a version",
			url:  "https://res.cloudinary.com/demo/image/upload/views/room.jpg",
			want: "views/room",
		},
		{
			name: "no upload segment",
			url:  "https://img.example.com/rooms/seaside.jpg",
			want: "",
		},
		{
			name: "nothing after upload",
			url:  "https://res.cloudinary.com/demo/image/upload",
			want: "",
		},
		{
			name: "unparseable url",
			url:  "::::",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PublicIDFromURL(tc.url))
		})
	}
}

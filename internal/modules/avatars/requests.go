package avatars

import (
	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/avatargroup"
)

// AvatarRequest is the query form of a single avatar descriptor.
type AvatarRequest struct {
	Image       string `query:"image" validate:"max=2048"`
	Alt         string `query:"alt" validate:"max=256"`
	Name        string `query:"name" validate:"max=256"`
	Fallback    string `query:"fallback" validate:"max=8"`
	Size        string `query:"size" validate:"omitempty,oneof=xs sm md lg xl xxl"`
	Shape       string `query:"shape" validate:"omitempty,oneof=circular rounded square"`
	Status      string `query:"status" validate:"omitempty,oneof=none online offline away busy"`
	ShowStatus  bool   `query:"show_status"`
	Interactive bool   `query:"interactive"`
	Loading     bool   `query:"loading"`
}

// ToSpec converts the request into a descriptor.
func (r AvatarRequest) ToSpec() (avatar.Spec, error) {
	size, err := avatar.ParseSize(r.Size)
	if err != nil {
		return avatar.Spec{}, err
	}
	shape, err := avatar.ParseShape(r.Shape)
	if err != nil {
		return avatar.Spec{}, err
	}
	status, err := avatar.ParseStatus(r.Status)
	if err != nil {
		return avatar.Spec{}, err
	}

	spec := avatar.Spec{
		ImageURL:      r.Image,
		AltText:       r.Alt,
		DisplayName:   r.Name,
		FallbackGlyph: r.Fallback,
		Size:          size,
		Shape:         shape,
		Status:        status,
		ShowStatus:    r.ShowStatus,
		Interactive:   r.Interactive,
		ForceLoading:  r.Loading,
	}
	return spec, spec.Validate()
}

// GroupRequest describes a group of avatars. Images pair with names by
// position; missing images mean the member shows initials.
type GroupRequest struct {
	Names   []string `query:"name" validate:"max=100,dive,max=256"`
	Images  []string `query:"image" validate:"max=100,dive,max=2048"`
	Max     int      `query:"max" validate:"omitempty,min=1,max=50"`
	Size    string   `query:"size" validate:"omitempty,oneof=xs sm md lg xl xxl"`
	Spacing string   `query:"spacing" validate:"omitempty,oneof=tight normal loose"`
}

// ToSpecs converts the request into member descriptors plus group layout.
func (r GroupRequest) ToSpecs() ([]avatar.Spec, avatar.Size, avatargroup.Spacing, error) {
	size, err := avatar.ParseSize(r.Size)
	if err != nil {
		return nil, 0, 0, err
	}
	spacing, err := avatargroup.ParseSpacing(r.Spacing)
	if err != nil {
		return nil, 0, 0, err
	}

	n := max(len(r.Names), len(r.Images))
	specs := make([]avatar.Spec, n)
	for i := range specs {
		if i < len(r.Names) {
			specs[i].DisplayName = r.Names[i]
		}
		if i < len(r.Images) {
			specs[i].ImageURL = r.Images[i]
		}
		if err := specs[i].Validate(); err != nil {
			return nil, 0, 0, err
		}
	}
	return specs, size, spacing, nil
}

// InitialsRequest asks for a raster initials badge.
type InitialsRequest struct {
	Name  string `query:"name" validate:"max=256"`
	Px    int    `query:"px" validate:"omitempty,min=8,max=512"`
	Shape string `query:"shape" validate:"omitempty,oneof=circular rounded square"`
}

// ColorResponse is the JSON form of a name's identity colour.
type ColorResponse struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Initials string `json:"initials"`
}

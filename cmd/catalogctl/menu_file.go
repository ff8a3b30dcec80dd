package main

import (
	"strings"

	"platter/config"
	"platter/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// menuFile is the YAML document accepted by the import command.
type menuFile struct {
	Restaurants []restaurantDoc `yaml:"restaurants" validate:"required,min=1,dive"`
}

type restaurantDoc struct {
	Slug             string        `yaml:"slug" validate:"required,max=100"`
	Name             string        `yaml:"name" validate:"required,max=200"`
	Cuisine          string        `yaml:"cuisine" validate:"max=100"`
	Address          string        `yaml:"address" validate:"max=300"`
	Latitude         float64       `yaml:"latitude" validate:"min=-90,max=90"`
	Longitude        float64       `yaml:"longitude" validate:"min=-180,max=180"`
	DeliveryRadiusKm float64       `yaml:"deliveryRadiusKm" validate:"min=0"`
	IsOpen           bool          `yaml:"isOpen"`
	ImageURL         string        `yaml:"imageUrl" validate:"omitempty,url"`
	Menu             []menuItemDoc `yaml:"menu" validate:"dive"`
}

type menuItemDoc struct {
	Name        string     `yaml:"name" validate:"required,max=200"`
	Description string     `yaml:"description"`
	Category    string     `yaml:"category" validate:"max=100"`
	ImageURL    string     `yaml:"imageUrl" validate:"omitempty,url"`
	Available   *bool      `yaml:"available"`
	Variations  []priceDoc `yaml:"variations" validate:"required,min=1,dive"`
	AddOns      []priceDoc `yaml:"addOns" validate:"dive"`
}

type priceDoc struct {
	Name  string          `yaml:"name" validate:"required,max=100"`
	Price decimal.Decimal `yaml:"price"`
}

func loadMenuFile(path string) (*menuFile, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read menu file %s", path)
	}

	var mf menuFile
	if err := k.UnmarshalWithConf("", &mf, koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &mf,
			WeaklyTypedInput: true,
			DecodeHook:       config.DecimalHookFunc(),
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode menu file %s", path)
	}

	if err := mf.validate(); err != nil {
		return nil, err
	}

	return &mf, nil
}

func (mf *menuFile) validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(mf); err != nil {
		return errors.Wrap(err, "invalid menu file")
	}

	slugs := make(map[string]struct{}, len(mf.Restaurants))
	for _, r := range mf.Restaurants {
		if _, dup := slugs[r.Slug]; dup {
			return errors.Errorf("restaurant %q is listed twice", r.Slug)
		}
		slugs[r.Slug] = struct{}{}

		names := make(map[string]struct{}, len(r.Menu))
		for _, item := range r.Menu {
			key := menuItemKey(item.Name)
			if _, dup := names[key]; dup {
				return errors.Errorf("restaurant %q lists menu item %q twice", r.Slug, item.Name)
			}
			names[key] = struct{}{}

			for _, p := range append(append([]priceDoc{}, item.Variations...), item.AddOns...) {
				if p.Price.IsNegative() {
					return errors.Errorf("menu item %q: price of %q must not be negative", item.Name, p.Name)
				}
			}
		}
	}

	return nil
}

// apply copies the file's fields onto r, keeping its identity.
func (s restaurantDoc) apply(r *entity.Restaurant) {
	r.Slug = s.Slug
	r.Name = s.Name
	r.Cuisine = s.Cuisine
	r.Address = s.Address
	r.Latitude = s.Latitude
	r.Longitude = s.Longitude
	r.DeliveryRadiusKm = s.DeliveryRadiusKm
	r.IsOpen = s.IsOpen
	r.ImageURL = s.ImageURL
}

func (s menuItemDoc) apply(item *entity.MenuItem) {
	item.Name = s.Name
	item.Description = s.Description
	item.Category = s.Category
	item.ImageURL = s.ImageURL
	item.IsAvailable = s.Available == nil || *s.Available

	item.Variations = make([]entity.Variation, 0, len(s.Variations))
	for _, v := range s.Variations {
		item.Variations = append(item.Variations, entity.Variation{Name: v.Name, Price: v.Price})
	}

	item.AddOns = make([]entity.AddOn, 0, len(s.AddOns))
	for _, a := range s.AddOns {
		item.AddOns = append(item.AddOns, entity.AddOn{Name: a.Name, Price: a.Price})
	}
}

func menuItemKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

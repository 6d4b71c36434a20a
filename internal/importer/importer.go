package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/SahakyanGor98/iqos/internal/domain"
)

// ProductWriter is the subset of the product repository the importer needs.
type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// Importer loads catalog feeds exported from the old store and upserts them
// by slug.
type Importer struct {
	writer ProductWriter
	logger *log.Logger
}

func New(writer ProductWriter, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Importer{writer: writer, logger: logger}
}

type deviceFeedItem struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	InStock     bool   `json:"inStock"`
	IsNew       bool   `json:"isNew"`
	IsHit       bool   `json:"isHit"`
	IsExclusive bool   `json:"isExclusive"`
	Line        string `json:"line"`
	Color       string `json:"color"`
	SalePrice   *int64 `json:"salePrice"`
}

type stickFeedItem struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageBlock  struct {
		Main string `json:"main"`
		Pack string `json:"pack"`
	} `json:"imageBlock"`
	PriceBlock struct {
		PerPack  int64 `json:"perPack"`
		PerBlock int64 `json:"perBlock"`
	} `json:"priceBlock"`
	InStock    bool     `json:"inStock"`
	IsNew      bool     `json:"isNew"`
	IsHit      bool     `json:"isHit"`
	Origin     string   `json:"origin"`
	Flavors    []string `json:"flavors"`
	Strength   string   `json:"strength"`
	HasCapsule bool     `json:"hasCapsule"`
}

// ImportDevices reads a device feed and upserts every valid entry. Entries
// without a slug or title are skipped and logged, not fatal.
func (im *Importer) ImportDevices(ctx context.Context, r io.Reader) (int, error) {
	var feed []deviceFeedItem
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return 0, fmt.Errorf("decode device feed: %w", err)
	}

	imported := 0
	for i, item := range feed {
		if item.Slug == "" || item.Title == "" {
			im.logger.Printf("importer: device entry %d missing slug or title, skipped", i)
			continue
		}
		p := domain.Product{
			Slug:        item.Slug,
			Title:       item.Title,
			Description: item.Description,
			Image:       item.Image,
			Price:       item.Price,
			Category:    domain.CategoryGadget,
			InStock:     item.InStock,
			Brand:       "IQOS",
			Badges: domain.Badges{
				IsNew:       item.IsNew,
				IsHit:       item.IsHit,
				IsExclusive: item.IsExclusive,
			},
			Device: &domain.DeviceAttributes{
				Line:      item.Line,
				Color:     item.Color,
				SalePrice: item.SalePrice,
			},
		}
		if _, err := im.writer.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert device %s: %w", item.Slug, err)
		}
		imported++
	}
	return imported, nil
}

// ImportSticks reads a sticks feed and upserts every valid entry.
func (im *Importer) ImportSticks(ctx context.Context, r io.Reader) (int, error) {
	var feed []stickFeedItem
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return 0, fmt.Errorf("decode sticks feed: %w", err)
	}

	imported := 0
	for i, item := range feed {
		if item.Slug == "" || item.Title == "" {
			im.logger.Printf("importer: sticks entry %d missing slug or title, skipped", i)
			continue
		}
		p := domain.Product{
			Slug:        item.Slug,
			Title:       item.Title,
			Description: item.Description,
			Image:       item.ImageBlock.Main,
			Price:       item.PriceBlock.PerPack,
			Category:    domain.CategorySticks,
			InStock:     item.InStock,
			Brand:       "Terea",
			Badges: domain.Badges{
				IsNew: item.IsNew,
				IsHit: item.IsHit,
			},
			Sticks: &domain.StickAttributes{
				Origin:     item.Origin,
				Flavors:    item.Flavors,
				Strength:   item.Strength,
				HasCapsule: item.HasCapsule,
				PricePack:  item.PriceBlock.PerBlock,
				ImagePack:  item.ImageBlock.Pack,
			},
		}
		if _, err := im.writer.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert sticks %s: %w", item.Slug, err)
		}
		imported++
	}
	return imported, nil
}

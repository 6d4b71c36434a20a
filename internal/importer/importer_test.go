package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/SahakyanGor98/iqos/internal/domain"
)

type captureWriter struct {
	upserted []domain.Product
	err      error
}

func (w *captureWriter) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.upserted = append(w.upserted, p)
	out := p
	out.ID = int64(len(w.upserted))
	return &out, nil
}

func TestImportDevices(t *testing.T) {
	feed := `[
		{"slug":"iqos-iluma-one","title":"IQOS Iluma One","image":"one.webp","price":24900,"inStock":true,"isHit":true,"line":"Iluma One","color":"Azure Blue","salePrice":21900},
		{"slug":"","title":"broken entry"},
		{"slug":"iqos-iluma-prime","title":"IQOS Iluma Prime","price":44900,"inStock":true,"line":"Iluma Prime","color":"Obsidian Black"}
	]`

	w := &captureWriter{}
	n, err := New(w, nil).ImportDevices(context.Background(), strings.NewReader(feed))
	if err != nil {
		t.Fatalf("import devices: %v", err)
	}
	if n != 2 || len(w.upserted) != 2 {
		t.Fatalf("expected 2 imported entries, got n=%d upserted=%d", n, len(w.upserted))
	}

	first := w.upserted[0]
	if first.Category != domain.CategoryGadget || first.Brand != "IQOS" {
		t.Fatalf("unexpected device mapping: %+v", first)
	}
	if first.Device == nil || first.Device.Line != "Iluma One" || first.Device.Color != "Azure Blue" {
		t.Fatalf("device attributes not mapped: %+v", first.Device)
	}
	if first.Device.SalePrice == nil || *first.Device.SalePrice != 21900 {
		t.Fatalf("sale price not mapped: %+v", first.Device)
	}
	if !first.Badges.IsHit || first.Badges.IsNew {
		t.Fatalf("badges not mapped: %+v", first.Badges)
	}
}

func TestImportSticks(t *testing.T) {
	feed := `[
		{"slug":"terea-purple-wave","title":"Terea Purple Wave","imageBlock":{"main":"pw.webp","pack":"pw-pack.webp"},"priceBlock":{"perPack":1700,"perBlock":16000},"inStock":true,"isNew":true,"origin":"Казахстан","flavors":["Ментол","Ягоды"],"strength":"3","hasCapsule":true}
	]`

	w := &captureWriter{}
	n, err := New(w, nil).ImportSticks(context.Background(), strings.NewReader(feed))
	if err != nil {
		t.Fatalf("import sticks: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported entry, got %d", n)
	}

	p := w.upserted[0]
	if p.Category != domain.CategorySticks || p.Brand != "Terea" {
		t.Fatalf("unexpected sticks mapping: %+v", p)
	}
	if p.Image != "pw.webp" || p.Price != 1700 {
		t.Fatalf("image or price block not flattened: image=%q price=%d", p.Image, p.Price)
	}
	if p.Sticks == nil || !p.Sticks.HasCapsule || p.Sticks.PricePack != 16000 || p.Sticks.ImagePack != "pw-pack.webp" {
		t.Fatalf("stick attributes not mapped: %+v", p.Sticks)
	}
	if len(p.Sticks.Flavors) != 2 || p.Sticks.Flavors[0] != "Ментол" {
		t.Fatalf("flavors not mapped: %v", p.Sticks.Flavors)
	}
}

func TestImportRejectsMalformedFeed(t *testing.T) {
	w := &captureWriter{}
	if _, err := New(w, nil).ImportDevices(context.Background(), strings.NewReader(`{"not":"an array"`)); err == nil {
		t.Fatalf("expected decode error")
	}
	if len(w.upserted) != 0 {
		t.Fatalf("expected no upserts on malformed feed")
	}
}

package seed

import (
	"context"
	"fmt"

	"github.com/SahakyanGor98/iqos/internal/domain"
	productrepo "github.com/SahakyanGor98/iqos/internal/repository/product"
	"github.com/jackc/pgx/v5/pgxpool"
)

func int64Ptr(v int64) *int64 { return &v }

// products is the starter catalog. Upserts key on slug, so re-running the
// seeder refreshes prices and attributes without duplicating rows.
var products = []domain.Product{
	{
		Slug:        "iqos-iluma-one-pebble-grey",
		Title:       "IQOS Iluma One",
		Description: "Компактное устройство для нагревания табака с индукционной системой Smartcore.",
		Image:       "https://sjqoinxhewxxbcczliyl.supabase.co/storage/v1/object/public/products/iluma-one-grey.webp",
		Price:       24900,
		Category:    domain.CategoryGadget,
		InStock:     true,
		Brand:       "IQOS",
		Badges:      domain.Badges{IsHit: true},
		Device: &domain.DeviceAttributes{
			Line:  "Iluma One",
			Color: "Pebble Grey",
		},
	},
	{
		Slug:        "iqos-iluma-prime-gold-khaki",
		Title:       "IQOS Iluma Prime",
		Description: "Флагманское устройство линейки Iluma в алюминиевом корпусе с тканевой отделкой.",
		Image:       "https://sjqoinxhewxxbcczliyl.supabase.co/storage/v1/object/public/products/iluma-prime-khaki.webp",
		Price:       44900,
		Category:    domain.CategoryGadget,
		InStock:     true,
		Brand:       "IQOS",
		Badges:      domain.Badges{IsNew: true, IsExclusive: true},
		Device: &domain.DeviceAttributes{
			Line:      "Iluma Prime",
			Color:     "Gold Khaki",
			SalePrice: int64Ptr(39900),
		},
	},
	{
		Slug:        "terea-menthol-kz",
		Title:       "Terea Menthol",
		Description: "Стики с выраженным ментоловым вкусом и охлаждающим послевкусием.",
		Image:       "https://sjqoinxhewxxbcczliyl.supabase.co/storage/v1/object/public/products/terea-menthol.webp",
		Price:       1700,
		Category:    domain.CategorySticks,
		InStock:     true,
		Brand:       "Terea",
		Badges:      domain.Badges{IsHit: true},
		Sticks: &domain.StickAttributes{
			Origin:     "Казахстан",
			Flavors:    []string{"Ментол"},
			Strength:   "4",
			HasCapsule: false,
			PricePack:  16000,
		},
	},
	{
		Slug:        "terea-purple-wave-kz",
		Title:       "Terea Purple Wave",
		Description: "Стики с капсулой: табак с ментолом и ягодным акцентом.",
		Image:       "https://sjqoinxhewxxbcczliyl.supabase.co/storage/v1/object/public/products/terea-purple-wave.webp",
		Price:       1700,
		Category:    domain.CategorySticks,
		InStock:     true,
		Brand:       "Terea",
		Badges:      domain.Badges{IsNew: true},
		Sticks: &domain.StickAttributes{
			Origin:     "Казахстан",
			Flavors:    []string{"Ментол", "Ягоды"},
			Strength:   "3",
			HasCapsule: true,
			PricePack:  16000,
		},
	},
	{
		Slug:        "terea-amber-kz",
		Title:       "Terea Amber",
		Description: "Табачные стики с насыщенным ореховым вкусом без ароматизаторов.",
		Image:       "https://sjqoinxhewxxbcczliyl.supabase.co/storage/v1/object/public/products/terea-amber.webp",
		Price:       1600,
		Category:    domain.CategorySticks,
		InStock:     true,
		Brand:       "Terea",
		Sticks: &domain.StickAttributes{
			Origin:     "Казахстан",
			Flavors:    []string{"Табак", "Орех"},
			Strength:   "5",
			HasCapsule: false,
			PricePack:  15000,
		},
	},
}

// Apply upserts the starter catalog.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	repo := productrepo.NewPostgres(pool, nil)
	for _, p := range products {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
	}
	return nil
}

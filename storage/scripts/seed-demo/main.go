package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/oklog/ulid/v2"

	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/history"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/prefs"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/storage"
)

// Seeds a demo brand profile and a handful of fake history entries so the
// UI has something to show on a fresh install.
func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/adgenius.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()

	brandName := gofakeit.Company()
	hotline := gofakeit.Phone()
	address := gofakeit.City()
	prefStore := prefs.NewStore(store.Queries)
	prefStore.Save(ctx, prefs.Update{
		BrandName:    &brandName,
		BrandHotline: &hotline,
		BrandAddress: &address,
	})
	fmt.Printf("Seeded brand profile: %s\n", brandName)

	historyLog := history.NewLog(store.DB(), store.Queries)
	for i := 0; i < 5; i++ {
		item := ads.HistoryItem{
			ID:           ulid.Make().String(),
			CreatedAtMs:  time.Now().Add(-time.Duration(i) * time.Hour).UnixMilli(),
			ProductImage: gofakeit.ImageURL(640, 640),
			CompanyName:  brandName,
			Content: ads.AdContent{
				Headline: gofakeit.Sentence(6),
				Body:     gofakeit.Paragraph(1, 3, 12, " "),
				Hashtags: []string{gofakeit.BuzzWord(), gofakeit.BuzzWord(), gofakeit.BuzzWord()},
			},
		}
		if err := historyLog.Append(ctx, item); err != nil {
			log.Printf("error seeding history item: %v", err)
			continue
		}
		fmt.Printf("Seeded history item: %s\n", item.ID)
	}

	fmt.Println("\nDemo data seeded successfully!")
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func ptr(v float64) *float64 { return &v }

var seedCategories = []models.CategoryRequest{
	{Name: "Экшен", Slug: "action", Icon: "Sword"},
	{Name: "RPG", Slug: "rpg", Icon: "Shield"},
	{Name: "Стратегии", Slug: "strategy", Icon: "Castle"},
	{Name: "Гонки", Slug: "racing", Icon: "Car"},
	{Name: "Инди", Slug: "indie", Icon: "Sparkles"},
	{Name: "Мультиплеер", Slug: "multiplayer", Icon: "Users"},
}

var seedTorrents = []models.TorrentRequest{
	{
		Title:       "Cyberpunk 2077: Phantom Liberty",
		Poster:      "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400",
		Downloads:   45000,
		Size:        112.5,
		Category:    []string{"action", "rpg"},
		Description: "Дополнение Phantom Liberty для Cyberpunk 2077 с новым районом и сюжетом",
		SteamRating: ptr(92),
	},
	{
		Title:       "Elden Ring",
		Poster:      "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=400",
		Downloads:   67000,
		Size:        58.3,
		Category:    []string{"action", "rpg"},
		Description: "Тёмное фэнтези от FromSoftware в открытом мире",
		SteamDeck:   true,
		SteamRating: ptr(95),
	},
	{
		Title:       "Red Dead Redemption 2",
		Poster:      "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=400",
		Downloads:   89000,
		Size:        120.0,
		Category:    []string{"action"},
		Description: "Вестерн от Rockstar Games с огромным открытым миром",
		SteamRating: ptr(97),
	},
	{
		Title:       "God of War",
		Poster:      "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=400",
		Downloads:   52000,
		Size:        70.2,
		Category:    []string{"action"},
		Description: "Кратос и Атрей отправляются в путешествие по миру скандинавской мифологии",
		SteamDeck:   true,
		SteamRating: ptr(94),
	},
	{
		Title:       "Hades",
		Poster:      "https://images.unsplash.com/photo-1556438064-2d7646166914?w=400",
		Downloads:   31000,
		Size:        15.0,
		Category:    []string{"action", "indie"},
		Description: "Рогалик про побег из греческого подземного царства",
		SteamDeck:   true,
		SteamRating: ptr(98),
	},
	{
		Title:       "Vampire Survivors",
		Poster:      "https://images.unsplash.com/photo-1509198397868-475647b2a1e5?w=400",
		Downloads:   28000,
		Size:        0.6,
		Category:    []string{"indie"},
		Description: "Минималистичный сурвайвор с лавиной врагов",
		SteamDeck:   true,
		SteamRating: ptr(97),
	},
	{
		Title:       "Stardew Valley",
		Poster:      "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=400",
		Downloads:   41000,
		Size:        1.2,
		Category:    []string{"indie"},
		Description: "Ферма, шахты и неспешная жизнь в маленьком городке",
		SteamDeck:   true,
		SteamRating: ptr(98),
	},
	{
		Title:       "Dead Cells",
		Poster:      "https://images.unsplash.com/photo-1580327344181-c1163234e5a0?w=400",
		Downloads:   19000,
		Size:        2.5,
		Category:    []string{"action", "indie"},
		Description: "Динамичный рогалик-метроидвания с отзывчивым управлением",
		SteamDeck:   true,
		SteamRating: ptr(95),
	},
	{
		Title:       "Counter-Strike 2",
		Poster:      "https://images.unsplash.com/photo-1560253023-3ec5d502959f?w=400",
		Downloads:   150000,
		Size:        35.0,
		Category:    []string{"action", "multiplayer"},
		Description: "Тактический шутер пять на пять на движке Source 2",
	},
	{
		Title:       "Rust",
		Poster:      "https://images.unsplash.com/photo-1587573089734-09cb69c0f2b4?w=400",
		Downloads:   73000,
		Size:        25.8,
		Category:    []string{"multiplayer"},
		Description: "Выживание на острове, где главная угроза не природа, а другие игроки",
	},
	{
		Title:       "Valheim",
		Poster:      "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=400",
		Downloads:   38000,
		Size:        1.8,
		Category:    []string{"multiplayer", "indie"},
		Description: "Кооперативное выживание в процедурном мире викингов",
		SteamDeck:   true,
		SteamRating: ptr(93),
	},
	{
		Title:       "ARK: Survival Evolved",
		Poster:      "https://images.unsplash.com/photo-1563089145-599997674d42?w=400",
		Downloads:   44000,
		Size:        95.4,
		Category:    []string{"action", "multiplayer"},
		Description: "Выживание среди динозавров с приручением и строительством",
	},
}

// main fills the catalog service with a starter data set
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("TORRTOP - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	client := services.NewCatalogAPIService(config.CatalogAPIURL())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Printf("Seeding %d categories...\n", len(seedCategories))
	for i := range seedCategories {
		if err := client.CreateCategory(ctx, &seedCategories[i]); err != nil {
			log.Fatalf("❌ Failed to create category %q: %v", seedCategories[i].Slug, err)
		}
		fmt.Printf("  ✅ %s (%s)\n", seedCategories[i].Name, seedCategories[i].Slug)
	}

	fmt.Printf("\nSeeding %d torrents...\n", len(seedTorrents))
	for i := range seedTorrents {
		if err := client.CreateTorrent(ctx, &seedTorrents[i]); err != nil {
			log.Fatalf("❌ Failed to create torrent %q: %v", seedTorrents[i].Title, err)
		}
		fmt.Printf("  ✅ %s\n", seedTorrents[i].Title)
	}

	fmt.Println()
	fmt.Println("🚀 Done. Start the server and open the catalog.")
}

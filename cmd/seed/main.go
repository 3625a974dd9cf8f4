package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"inkbooking/config"
	"inkbooking/internal/domain"
	"inkbooking/internal/repository/postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS artists (
	id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name        text NOT NULL,
	bio         text,
	portfolio   text[] NOT NULL DEFAULT '{}',
	location    text,
	specialties text[],
	created_at  timestamptz NOT NULL DEFAULT now(),
	updated_at  timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookings (
	id             uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	artist_id      uuid NOT NULL REFERENCES artists (id),
	name           text NOT NULL,
	contact        text NOT NULL,
	preferred_date date NOT NULL,
	preferred_time text NOT NULL,
	message        text,
	status         text NOT NULL DEFAULT 'pending',
	created_at     timestamptz NOT NULL DEFAULT now(),
	updated_at     timestamptz NOT NULL DEFAULT now()
);
`

func strPtr(s string) *string { return &s }

var seedArtists = []*domain.Artist{
	{
		Name: "Priya Sharma",
		Bio:  strPtr("Specialized in minimalist and geometric tattoos. 5+ years of experience creating clean, meaningful designs."),
		Portfolio: []string{
			"https://images.unsplash.com/photo-1485463598028-44d6c47bf23f?w=800&q=80",
			"https://images.unsplash.com/photo-1542727365-19732a80dcfd?w=800&q=80",
			"https://images.unsplash.com/photo-1562962230-16e4623d36e6?w=800&q=80",
		},
		Location:    strPtr("Bangalore"),
		Specialties: []string{"Minimalist", "Geometric", "Linework"},
	},
	{
		Name: "Arjun Patel",
		Bio:  strPtr("Master of traditional Indian and mandala designs. Bringing ancient art forms to modern tattoo culture."),
		Portfolio: []string{
			"https://images.unsplash.com/photo-1628802634987-56dcd0de35e6?w=800&q=80",
			"https://images.unsplash.com/photo-1562379825-415aea84ebcf?w=800&q=80",
			"https://images.unsplash.com/photo-1543244128-30d70d41e2a9?w=800&q=80",
		},
		Location:    strPtr("Mumbai"),
		Specialties: []string{"Traditional", "Mandala", "Indian Art"},
	},
	{
		Name: "Maya Reddy",
		Bio:  strPtr("Watercolor and abstract tattoo specialist. Known for vibrant colors and flowing designs."),
		Portfolio: []string{
			"https://images.unsplash.com/photo-1635425542915-6da07160887c?w=800&q=80",
			"https://images.unsplash.com/photo-1614769842925-8193ebda68b5?w=800&q=80",
		},
		Location:    strPtr("Delhi"),
		Specialties: []string{"Watercolor", "Abstract", "Color Work"},
	},
	{
		Name: "Rohan Kumar",
		Bio:  strPtr("Realism and portrait expert. Creating lifelike tattoos that capture every detail."),
		Portfolio: []string{
			"https://images.unsplash.com/photo-1665085326519-e53effa90953?w=800&q=80",
			"https://images.unsplash.com/photo-1565058379802-bbe93b2f703a?w=800&q=80",
		},
		Location:    strPtr("Pune"),
		Specialties: []string{"Realism", "Portraits", "Black & Gray"},
	},
	{
		Name: "Sneha Desai",
		Bio:  strPtr("Fine line and delicate tattoo artist. Specializing in dainty, elegant designs."),
		Portfolio: []string{
			"https://images.unsplash.com/photo-1704253801965-a5dffb1879a9?w=800&q=80",
			"https://images.unsplash.com/photo-1603566431089-7f077f615682?w=800&q=80",
		},
		Location:    strPtr("Hyderabad"),
		Specialties: []string{"Fine Line", "Delicate", "Minimalist"},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Error("failed to apply schema", "err", err)
		os.Exit(1)
	}

	repo := postgres.NewArtistRepository(db)
	seeded := 0
	for _, artist := range seedArtists {
		exists, err := repo.ExistsByName(ctx, artist.Name)
		if err != nil {
			logger.Error("failed to check artist", "name", artist.Name, "err", err)
			os.Exit(1)
		}
		if exists {
			logger.Info("artist already seeded, skipping", "name", artist.Name)
			continue
		}
		if err := repo.Create(ctx, artist); err != nil {
			logger.Error("failed to seed artist", "name", artist.Name, "err", err)
			os.Exit(1)
		}
		logger.Info("seeded artist", "name", artist.Name, "id", artist.ID)
		seeded++
	}
	logger.Info("seeding complete", "seeded", seeded, "skipped", len(seedArtists)-seeded)
}

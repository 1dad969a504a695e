// Seeds the skills and languages dictionaries. Safe to re-run: existing
// names are left untouched.
//
// Usage: DATABASE_URL=postgres://... go run ./scripts/seeddict
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"jobportal-backend/pkg/database"
)

var skills = []string{
	"Python", "Go", "Java", "JavaScript", "TypeScript", "C", "C++", "C#",
	"SQL", "HTML", "CSS", "React", "Angular", "Vue", "Django", "Spring",
	"Node.js", "Docker", "Kubernetes", "AWS", "Linux", "Git",
	"Machine Learning", "Data Analysis", "Project Management",
}

var languages = []string{
	"English", "Hindi", "Spanish", "French", "German", "Mandarin",
	"Japanese", "Arabic", "Portuguese", "Russian", "Bengali", "Tamil",
	"Telugu", "Marathi", "Kannada", "Malayalam",
}

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	inserted := 0
	for _, name := range skills {
		tag, err := pool.Exec(ctx,
			`INSERT INTO skills (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			log.Fatalf("seed skill %q: %v", name, err)
		}
		inserted += int(tag.RowsAffected())
	}
	fmt.Printf("skills: %d new, %d total candidates\n", inserted, len(skills))

	inserted = 0
	for _, name := range languages {
		tag, err := pool.Exec(ctx,
			`INSERT INTO languages (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			log.Fatalf("seed language %q: %v", name, err)
		}
		inserted += int(tag.RowsAffected())
	}
	fmt.Printf("languages: %d new, %d total candidates\n", inserted, len(languages))
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/QianfengWen/CSC316/internal/models"
)

// RestaurantRepository reads the pre-built restaurant dataset.
type RestaurantRepository struct {
	db *sql.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *sql.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// LoadAll reads every restaurant row in stored order. Called once at startup;
// the resulting slice backs the immutable feature index for the life of the
// process.
func (r *RestaurantRepository) LoadAll() ([]models.RawRecord, error) {
	query := `SELECT id, name, lat, lng, stars, review_count, categories
		FROM restaurants ORDER BY rowid`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		var rec models.RawRecord
		var categories sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Lat, &rec.Lng,
			&rec.Stars, &rec.ReviewCount, &categories); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		if categories.Valid {
			rec.Categories = categories.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}

	return records, nil
}

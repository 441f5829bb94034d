package listings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a property id has no row
var ErrNotFound = errors.New("property not found")

// Repository handles listing persistence
// ⭐ SSOT: 매물 저장/조회는 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new listing repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Upsert inserts a listing or refreshes an existing one by property id
func (r *Repository) Upsert(ctx context.Context, p *Property) error {
	query := `
		INSERT INTO listings.properties (
			property_id, listing_title, city, area, zone, location_hub,
			property_type, ownership, size_in_sqft, carpet_area_sqft,
			floor_no, total_floors, rent_price, security_deposit,
			brokerage, possession_status, property_age, negotiable,
			lock_in_months, facilities, floor_availability, collected_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		          $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, NOW())
		ON CONFLICT (property_id) DO UPDATE SET
			listing_title = EXCLUDED.listing_title,
			city = EXCLUDED.city,
			area = EXCLUDED.area,
			zone = EXCLUDED.zone,
			location_hub = EXCLUDED.location_hub,
			property_type = EXCLUDED.property_type,
			ownership = EXCLUDED.ownership,
			size_in_sqft = EXCLUDED.size_in_sqft,
			carpet_area_sqft = EXCLUDED.carpet_area_sqft,
			floor_no = EXCLUDED.floor_no,
			total_floors = EXCLUDED.total_floors,
			rent_price = EXCLUDED.rent_price,
			security_deposit = EXCLUDED.security_deposit,
			brokerage = EXCLUDED.brokerage,
			possession_status = EXCLUDED.possession_status,
			property_age = EXCLUDED.property_age,
			negotiable = EXCLUDED.negotiable,
			lock_in_months = EXCLUDED.lock_in_months,
			facilities = EXCLUDED.facilities,
			floor_availability = EXCLUDED.floor_availability,
			collected_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query,
		p.PropertyID, p.ListingTitle, p.City, p.Area, p.Zone, p.LocationHub,
		p.PropertyType, p.Ownership, p.SizeSqft, p.CarpetAreaSqft,
		p.FloorNo, p.TotalFloors, p.RentPrice, p.SecurityDeposit,
		p.Brokerage, p.PossessionStatus, p.PropertyAge, p.Negotiable,
		p.LockInMonths, p.Facilities, p.Floors,
	)
	if err != nil {
		return fmt.Errorf("upsert property %s: %w", p.PropertyID, err)
	}
	return nil
}

// GetByID retrieves one listing
func (r *Repository) GetByID(ctx context.Context, propertyID string) (*Property, error) {
	query := selectColumns + ` WHERE property_id = $1`

	row := r.pool.QueryRow(ctx, query, propertyID)
	p, err := scanProperty(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get property %s: %w", propertyID, err)
	}
	return p, nil
}

// List returns the full inventory, newest collections first. Search
// filtering happens in memory; the inventory for one city stays small
// enough that a per-criteria SQL builder is not worth its complexity.
func (r *Repository) List(ctx context.Context) ([]Property, error) {
	query := selectColumns + ` ORDER BY collected_at DESC, property_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var out []Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return out, nil
}

// Count returns the inventory size
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM listings.properties`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return n, nil
}

const selectColumns = `
	SELECT
		property_id, listing_title, city, area, zone, location_hub,
		property_type, ownership, size_in_sqft, carpet_area_sqft,
		floor_no, total_floors, rent_price, security_deposit,
		brokerage, possession_status, property_age, negotiable,
		lock_in_months, facilities, floor_availability, collected_at
	FROM listings.properties`

func scanProperty(row pgx.Row) (*Property, error) {
	p := &Property{
		Facilities: make(map[string]bool),
		Floors:     make(map[string]bool),
	}
	err := row.Scan(
		&p.PropertyID, &p.ListingTitle, &p.City, &p.Area, &p.Zone, &p.LocationHub,
		&p.PropertyType, &p.Ownership, &p.SizeSqft, &p.CarpetAreaSqft,
		&p.FloorNo, &p.TotalFloors, &p.RentPrice, &p.SecurityDeposit,
		&p.Brokerage, &p.PossessionStatus, &p.PropertyAge, &p.Negotiable,
		&p.LockInMonths, &p.Facilities, &p.Floors, &p.CollectedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

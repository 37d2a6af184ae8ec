package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"staybook/internal/domain"
)

// detailReviewLimit caps the reviews embedded in a HotelDetail.
const detailReviewLimit = 50

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertHotel(ctx context.Context, h domain.HotelDetail) error {
	amen, err := valJSON(h.Amenities)
	if err != nil {
		return fmt.Errorf("marshal amenities: %w", err)
	}
	imgs, err := valJSON(h.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}
	cat := h.Category
	if cat == "" {
		cat = domain.LocationAny
	}
	_, err = r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		h.Name,
		valStr(h.Image),
		valStr(h.Location),
		string(cat),
		h.Price,
		h.Rating,
		valInt(h.Discount),
		amen,
		valStr(h.Description),
		imgs,
		h.ReviewCount,
	)
	return err
}

func (r *Repo) UpsertRooms(ctx context.Context, hotelID string, rooms []domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	values := make([]string, 0, len(rooms))
	args := make([]any, 0, len(rooms)*11)
	for i, rm := range rooms {
		feats, err := valJSON(rm.Features)
		if err != nil {
			return fmt.Errorf("marshal features for room %s: %w", rm.ID, err)
		}
		values = append(values, "(?,?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			hotelID,
			rm.ID,
			rm.Name,
			rm.Price,
			rm.Discount,
			valStr(rm.Image),
			rm.Capacity,
			valStr(rm.Beds),
			valStr(rm.Size),
			feats,
			i,
		)
	}
	sqlStr := insertRoomsPrefix + strings.Join(values, ",") + insertRoomsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) UpsertReviews(ctx context.Context, hotelID string, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*6)
	for _, rv := range rs {
		values = append(values, "(?,?,?,?,?,?)")
		args = append(args,
			hotelID,
			rv.Author,
			valStr(rv.Initials),
			rv.Rating,
			rv.Date.Format(time.DateOnly),
			valStr(rv.Text),
		)
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHotel(s scanner) (domain.HotelDetail, error) {
	var (
		d                 domain.HotelDetail
		image, location   sql.NullString
		category          string
		discount          sql.NullInt64
		amenities, images []byte
		description       sql.NullString
	)
	if err := s.Scan(
		&d.ID,
		&d.Name,
		&image,
		&location,
		&category,
		&d.Price,
		&d.Rating,
		&discount,
		&amenities,
		&description,
		&images,
		&d.ReviewCount,
	); err != nil {
		return domain.HotelDetail{}, err
	}
	d.Image = image.String
	d.Location = location.String
	d.Category = domain.LocationCategory(category)
	d.Description = description.String
	if discount.Valid {
		v := int(discount.Int64)
		d.Discount = &v
	}
	if err := json.Unmarshal(amenities, &d.Amenities); err != nil {
		return domain.HotelDetail{}, fmt.Errorf("decode amenities for %s: %w", d.ID, err)
	}
	if err := json.Unmarshal(images, &d.Images); err != nil {
		return domain.HotelDetail{}, fmt.Errorf("decode images for %s: %w", d.ID, err)
	}
	return d, nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		d, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d.Hotel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.HotelDetail, error) {
	d, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.HotelDetail{}, domain.ErrNotFound
		}
		return domain.HotelDetail{}, err
	}
	if d.Rooms, err = r.listRooms(ctx, id); err != nil {
		return domain.HotelDetail{}, err
	}
	if d.Reviews, err = r.ListReviews(ctx, id, detailReviewLimit); err != nil {
		return domain.HotelDetail{}, err
	}
	return d, nil
}

func (r *Repo) listRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var (
			rm                domain.Room
			image, beds, size sql.NullString
			features          []byte
		)
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Price, &rm.Discount, &image, &rm.Capacity, &beds, &size, &features); err != nil {
			return nil, err
		}
		rm.Image = image.String
		rm.Beds = beds.String
		rm.Size = size.String
		if err := json.Unmarshal(features, &rm.Features); err != nil {
			return nil, fmt.Errorf("decode features for room %s: %w", rm.ID, err)
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) ListReviews(ctx context.Context, hotelID string, limit int) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, hotelID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var (
			rv             domain.Review
			initials, text sql.NullString
		)
		if err := rows.Scan(&rv.ID, &rv.HotelID, &rv.Author, &initials, &rv.Rating, &rv.Date, &text); err != nil {
			return nil, err
		}
		rv.Initials = initials.String
		rv.Text = text.String
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

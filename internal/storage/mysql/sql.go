package mysql

const createMigrationsSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  name       VARCHAR(255) NOT NULL PRIMARY KEY,
  applied_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

const acquireMigrationLockSQL = `SELECT GET_LOCK('staybook_migrations', 30)`

const releaseMigrationLockSQL = `SELECT RELEASE_LOCK('staybook_migrations')`

const migrationAppliedSQL = `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = ?)`

const recordMigrationSQL = `INSERT INTO schema_migrations (name) VALUES (?)`

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, image, location, category, price, rating, discount, amenities, description, images, review_count)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name         = VALUES(name),
  image        = VALUES(image),
  location     = VALUES(location),
  category     = VALUES(category),
  price        = VALUES(price),
  rating       = VALUES(rating),
  discount     = VALUES(discount),
  amenities    = VALUES(amenities),
  description  = VALUES(description),
  images       = VALUES(images),
  review_count = VALUES(review_count),
  updated_at   = CURRENT_TIMESTAMP
`

const insertRoomsPrefix = "INSERT INTO rooms\n  (hotel_id, id, name, price, discount, image, capacity, beds, size, features, position)\nVALUES "

const insertRoomsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  name     = VALUES(name),\n" +
	"  price    = VALUES(price),\n" +
	"  discount = VALUES(discount),\n" +
	"  image    = VALUES(image),\n" +
	"  capacity = VALUES(capacity),\n" +
	"  beds     = VALUES(beds),\n" +
	"  size     = VALUES(size),\n" +
	"  features = VALUES(features),\n" +
	"  position = VALUES(position)\n"

// Note: `text` is reserved; keep it quoted everywhere.
const insertReviewsPrefix = "INSERT INTO reviews\n  (hotel_id, author, initials, rating, reviewed_on, `text`)\nVALUES "

const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  initials = COALESCE(VALUES(initials), reviews.initials),\n" +
	"  rating   = VALUES(rating),\n" +
	"  `text`   = COALESCE(VALUES(`text`), reviews.`text`)\n"

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const hotelColumns = `id, name, image, location, category, price, rating, discount, amenities, description, images, review_count`

const listHotelsSQL = `SELECT ` + hotelColumns + ` FROM hotels ORDER BY id`

const getHotelSQL = `SELECT ` + hotelColumns + ` FROM hotels WHERE id = ?`

const listRoomsSQL = `
SELECT id, name, price, discount, image, capacity, beds, size, features
FROM rooms
WHERE hotel_id = ?
ORDER BY position, id
`

const listReviewsSQL = "SELECT id, hotel_id, author, initials, rating, reviewed_on, `text`\n" +
	"FROM reviews\nWHERE hotel_id = ?\nORDER BY reviewed_on DESC, id DESC\nLIMIT ?"

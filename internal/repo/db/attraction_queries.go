package db

// attractionCreateQ resolves the category by name and inserts in a single
// statement, so a missing category yields no row instead of a dangling insert.
const attractionCreateQ = `
INSERT INTO attractions (name, description, image, latitude, longitude, category_id)
SELECT $1::text, $2::text, NULLIF($3::text, ''), $4::double precision, $5::double precision, c.id
FROM categories c
WHERE c.name = $6
RETURNING id
`

const attractionDeleteQ = `
DELETE FROM attractions
WHERE id IN (?)
`

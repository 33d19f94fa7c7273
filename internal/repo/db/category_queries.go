package db

const categoryListQ = `
SELECT c.id, c.name
FROM categories c
ORDER BY c.name
`

const categoryCreateQ = `
INSERT INTO categories (name)
VALUES ($1)
`

package db

const userCreateQ = `
INSERT INTO users (email, password, name)
VALUES ($1, $2, $3)
RETURNING id
`

const userGetByEmailQ = `
SELECT
	u.id,
	u.email,
	u.name,
	u.password,
	u.avatar
FROM users u
WHERE u.email = $1
`

const userUpdateAvatarQ = `
UPDATE users
SET avatar = $1
WHERE id = $2
`

const biometricsGetQ = `
SELECT enabled
FROM user_biometrics
WHERE user_id = $1
`

const biometricsUpsertQ = `
INSERT INTO user_biometrics (user_id, enabled)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE
SET enabled = EXCLUDED.enabled
RETURNING enabled
`

package store

const (
	getSessionByID = `SELECT session_id, shop, payload, created_at
    FROM sessions
    WHERE session_id = $1;`

	createSubmission = `INSERT INTO submissions (id, shop, author_name, author_email, title, body, photo_urls, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, shop, author_name, author_email, title, body, photo_urls, status, created_at, updated_at;`

	getSubmissionByID = `SELECT id, shop, author_name, author_email, title, body, photo_urls, status, created_at, updated_at
    FROM submissions
    WHERE id = $1;`

	updateSubmissionStatus = `UPDATE submissions
    SET status = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING id, shop, author_name, author_email, title, body, photo_urls, status, created_at, updated_at;`
)

package sqlinline

const userColumns = `id, name, email, role, student_id, department, profile_image, password_hash, is_verified, created_at`

const QInsertUser = `--sql c3f349c1-8f8b-4063-b3d5-51c79afca5d2
insert into users(id, name, email, role, student_id, department, profile_image, password_hash, is_verified, created_at)
values ($1::text, $2::text, lower($3::text), $4::text, $5::text, $6::text, $7::text, $8::text, $9::bool, $10::timestamptz);
`

const QSelectUserByID = `--sql b3a8bb15-d658-45c8-a5d3-02a401a0397e
select ` + userColumns + `
from users
where id = $1::text;
`

const QSelectUserByEmail = `--sql 1d2da0fe-2147-403e-ba15-d3d233bc6a04
select ` + userColumns + `
from users
where email = lower($1::text);
`

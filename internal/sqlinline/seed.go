package sqlinline

const QCountCategories = `--sql 459cc04c-f27b-4060-93ee-0efe47aa5084
select count(*) from categories;
`

const QInsertCategory = `--sql 5e3a7dd0-f5f0-4acc-966e-54d6694b63b6
insert into categories(id, name, description, icon, color)
values ($1::text, $2::text, $3::text, $4::text, $5::text)
on conflict (id) do nothing;
`

// QInsertSeedDonation stores a historical donation without touching the
// campaign counters, which the seed already carries.
const QInsertSeedDonation = `--sql 21cad70a-5292-4a70-aa1a-0b36b1596e65
insert into donations(id, campaign_id, donor_id, donor_name, donor_email, amount, message, anonymous,
                      payment_status, payment_method, created_at)
values ($1::text, $2::text, nullif($3::text, ''), $4::text, $5::text, $6::numeric, $7::text, $8::bool,
        $9::text, $10::text, $11::timestamptz)
on conflict (id) do nothing;
`

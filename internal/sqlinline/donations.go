package sqlinline

// QRecordDonation inserts the donation and bumps the campaign counters in a
// single statement. A replayed idempotency key inserts nothing.
const QRecordDonation = `--sql 69fbea5e-1874-4b10-bc4f-93a03944b076
with ins as (
    insert into donations(id, campaign_id, donor_id, donor_name, donor_email, amount, message, anonymous,
                          payment_status, payment_method, idempotency_key, created_at)
    values ($1::text, $2::text, nullif($3::text, ''), $4::text, $5::text, $6::numeric, $7::text, $8::bool,
            $9::text, $10::text, nullif($11::text, ''), $12::timestamptz)
    on conflict (idempotency_key) do nothing
    returning campaign_id, amount, payment_status
),
upd as (
    update campaigns c
    set raised = c.raised + ins.amount,
        donor_count = c.donor_count + 1,
        updated_at = $12::timestamptz
    from ins
    where c.id = ins.campaign_id and ins.payment_status = 'completed'
    returning c.id
)
select (select count(*) from ins), (select count(*) from upd);
`

const donationColumns = `id, campaign_id, coalesce(donor_id, ''), donor_name, donor_email, amount::float8, message, anonymous,
       payment_status, payment_method, coalesce(idempotency_key, ''), created_at`

const QListDonationsByCampaign = `--sql 576ca9a3-200a-4ac0-81f0-ef0ce5978111
select ` + donationColumns + `
from donations
where campaign_id = $1::text
order by seq asc;
`

const QSelectDonationByIdempotencyKey = `--sql 509bd1ab-aaa1-4369-8e6e-6631a09f7cdd
select ` + donationColumns + `
from donations
where idempotency_key = $1::text;
`

package sqlinline

const campaignColumns = `
    c.id, c.title, c.short_description, c.description, c.goal::float8, c.raised::float8,
    c.deadline, c.created_at, c.updated_at, c.status, coalesce(c.creator_id, ''),
    c.images, c.tags, c.donor_count, c.featured, c.university_approved,
    cat.id, cat.name, cat.description, cat.icon, cat.color,
    u.id, u.name, u.email, u.role, u.student_id, u.department, u.profile_image, u.is_verified, u.created_at
from campaigns c
join categories cat on cat.id = c.category_id
left join users u on u.id = c.creator_id`

const QListCampaigns = `--sql 798eb1a0-025c-4e80-952c-572e54a2ee29
select` + campaignColumns + `
order by c.seq asc;
`

const QSelectCampaignByID = `--sql 1c024e85-ef8a-460b-8c04-353b1ad62855
select` + campaignColumns + `
where c.id = $1::text;
`

const QInsertCampaign = `--sql 8ce1e056-ee4a-41f4-851f-bbdcfdfc3e24
insert into campaigns(id, title, short_description, description, goal, raised, deadline, created_at, updated_at,
                      category_id, status, creator_id, images, tags, donor_count, featured, university_approved)
values ($1::text, $2::text, $3::text, $4::text, $5::numeric, $6::numeric, $7::timestamptz, $8::timestamptz, $9::timestamptz,
        $10::text, $11::text, nullif($12::text, ''), $13::text[], $14::text[], $15::int, $16::bool, $17::bool);
`

const QAppendCampaignImage = `--sql 9b53c3d6-f3c8-45fc-98d9-75582003fc24
update campaigns
set images = array_append(images, $2::text), updated_at = $3::timestamptz
where id = $1::text;
`

const QUpdateCampaignStatus = `--sql 5f381e83-9dd5-4c16-81b4-9f5e9d5ec9d8
update campaigns
set status = $2::text,
    university_approved = university_approved or $2::text = 'active',
    updated_at = $3::timestamptz
where id = $1::text;
`

const QSetCampaignApproval = `--sql 157406a8-e489-41e2-b9bf-a63878ae3926
update campaigns
set university_approved = $2::bool, updated_at = now()
where id = $1::text
returning id, title, status, university_approved, featured;
`

const QSetCampaignFeatured = `--sql 020e75b3-736e-4939-815c-fd0168cfab60
update campaigns
set featured = $2::bool, updated_at = now()
where id = $1::text
returning id, title, status, university_approved, featured;
`

const QCloseExpiredCampaigns = `--sql b6facb09-c857-4bdc-bb26-2ed6f3f4492c
update campaigns
set status = 'completed', updated_at = $1::timestamptz
where status = 'active' and deadline < $1::timestamptz
returning id;
`

const QListCampaignUpdates = `--sql fa8528db-7a01-460e-9ed0-d11d03a5e492
select id, campaign_id, title, content, author, created_at
from campaign_updates
where campaign_id = $1::text
order by created_at desc;
`

const QInsertCampaignUpdate = `--sql df1ee872-a880-4690-9dee-88c2ff1924a7
insert into campaign_updates(id, campaign_id, title, content, author, created_at)
values ($1::text, $2::text, $3::text, $4::text, $5::text, $6::timestamptz);
`

const QListCategories = `--sql ec0d75e9-2ad2-4f2b-bfa6-ea693e1db371
select id, name, description, icon, color
from categories
order by id asc;
`

const QSelectCategoryByID = `--sql 241293d5-2d75-4ac9-b26b-cde7af69f888
select id, name, description, icon, color
from categories
where id = $1::text;
`

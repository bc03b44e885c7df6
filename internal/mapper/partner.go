package mapper

import "github.com/felixgeelhaar/revive-mcp/internal/domain"

// AdvertiserAliases lists the wire keys of advertiser fields.
var AdvertiserAliases = Aliases{
	"id":    {"advertiserId", "clientid", "id"},
	"name":  {"advertiserName", "clientname", "name"},
	"email": {"emailAddress", "email"},
}

// PublisherAliases lists the wire keys of publisher fields.
var PublisherAliases = Aliases{
	"id":      {"publisherId", "publisherid", "affiliateid", "id"},
	"name":    {"publisherName", "name"},
	"website": {"website", "websiteName", "websitename"},
	"email":   {"emailAddress", "email"},
}

// ToAdvertiser converts a wire struct into an Advertiser.
func ToAdvertiser(r Record) domain.Advertiser {
	a := AdvertiserAliases
	return domain.Advertiser{
		ID:          Int(r.value(a, "id"), 0),
		Name:        String(r.value(a, "name")),
		AgencyID:    Int(r.value(a, "agencyId"), 0),
		ContactName: String(r.value(a, "contactName")),
		Email:       String(r.value(a, "email")),
	}
}

// ToAdvertisers maps a wire array of advertisers.
func ToAdvertisers(v any) []domain.Advertiser {
	return mapList(v, ToAdvertiser)
}

// ToPublisher converts a wire struct into a Publisher.
func ToPublisher(r Record) domain.Publisher {
	a := PublisherAliases
	return domain.Publisher{
		ID:          Int(r.value(a, "id"), 0),
		Name:        String(r.value(a, "name")),
		AgencyID:    Int(r.value(a, "agencyId"), 0),
		Website:     String(r.value(a, "website")),
		ContactName: String(r.value(a, "contactName")),
		Email:       String(r.value(a, "email")),
	}
}

// ToPublishers maps a wire array of publishers.
func ToPublishers(v any) []domain.Publisher {
	return mapList(v, ToPublisher)
}

package cache

import (
	"fmt"
	"strings"
)

type EntityType string

const (
	EntityLien     EntityType = "lien"
	EntityIncident EntityType = "incident"
)

type KeyType string

const (
	KeyAddress KeyType = "address"
	KeyArea    KeyType = "area"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}

// AddressKey builds a key for an address, collapsing whitespace so that
// equivalent spellings share an entry.
func AddressKey(entity EntityType, address string) string {
	return GenerateKey(entity, KeyAddress, strings.Join(strings.Fields(address), "_"))
}

// IncidentKey names a cached nearby-incident count. Counts cover a
// neighborhood within a district, or a single address when the address
// names no neighborhood.
func IncidentKey(district, neighborhood, address string) string {
	if neighborhood == "" {
		return AddressKey(EntityIncident, address)
	}
	return GenerateKey(EntityIncident, KeyArea, district+"_"+neighborhood)
}

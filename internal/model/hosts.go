package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// HostShare is the stored host representation. Legacy games persisted hosts
// as plain name strings; DecodeHosts migrates those to equal share ratios so
// no use site has to branch on the representation.
type HostShare struct {
	Name       string  `json:"name"`
	ShareRatio float64 `json:"shareRatio"`
}

type InsurancePartner struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// DecodeHosts parses a host list column, accepting both the current object
// form and the legacy ["A","B"] string form. Unset or missing ratios default
// to an equal split.
func DecodeHosts(raw datatypes.JSON) []HostShare {
	if len(raw) == 0 {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	hosts := make([]HostShare, 0, len(entries))
	missingRatio := 0
	for _, entry := range entries {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			hosts = append(hosts, HostShare{Name: name})
			missingRatio++
			continue
		}
		var host HostShare
		if err := json.Unmarshal(entry, &host); err != nil || host.Name == "" {
			continue
		}
		if host.ShareRatio <= 0 {
			missingRatio++
		}
		hosts = append(hosts, host)
	}

	if len(hosts) == 0 {
		return nil
	}
	if missingRatio == len(hosts) {
		equal := 1.0 / float64(len(hosts))
		for i := range hosts {
			hosts[i].ShareRatio = equal
		}
	}
	return hosts
}

func EncodeHosts(hosts []HostShare) datatypes.JSON {
	raw, err := json.Marshal(hosts)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

func DecodePartners(raw datatypes.JSON) []InsurancePartner {
	if len(raw) == 0 {
		return nil
	}
	var partners []InsurancePartner
	if err := json.Unmarshal(raw, &partners); err != nil {
		return nil
	}
	return partners
}

func EncodePartners(partners []InsurancePartner) datatypes.JSON {
	raw, err := json.Marshal(partners)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantbroker/leads-api/internal/entity"
	"github.com/quantbroker/leads-api/internal/usecase"
)

func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{ContactKey: "ana@example.com", DisplayName: "Ana Maria", Phone: "(11) 99999-1111", Origin: entity.OriginWaitlist, Status: entity.StatusNew},
		{ContactKey: "bruno@example.com", DisplayName: "Bruno Lima", Phone: "(21) 98888-2222", Origin: entity.OriginWaitlist, Status: entity.StatusContacted},
		{ContactKey: "carla@example.com", DisplayName: "Carla Dias", Phone: "(31) 97777-3333", Origin: entity.OriginConsultation, Status: entity.StatusNew},
		{ContactKey: "diego@example.com", DisplayName: "Diego Souza", Phone: "(41) 96666-4444", Origin: entity.OriginUser, Status: entity.StatusConverted},
	}
}

func TestFilterBySource(t *testing.T) {
	leads := sampleLeads()

	out := usecase.FilterLeads(leads, usecase.LeadFilter{Source: "waitlist"})

	assert.Len(t, out, 2)
	for _, lead := range out {
		assert.Equal(t, entity.OriginWaitlist, lead.Origin)
	}
}

func TestFilterAllPassesEverything(t *testing.T) {
	leads := sampleLeads()

	out := usecase.FilterLeads(leads, usecase.LeadFilter{Source: "all", Status: "all"})

	assert.Len(t, out, len(leads))
}

func TestFilterComposesWithAnd(t *testing.T) {
	leads := sampleLeads()

	out := usecase.FilterLeads(leads, usecase.LeadFilter{Source: "waitlist", Status: "new"})

	assert.Len(t, out, 1)
	assert.Equal(t, "ana@example.com", out[0].ContactKey)
}

func TestFilterOrderIndependence(t *testing.T) {
	leads := sampleLeads()

	combined := usecase.FilterLeads(leads, usecase.LeadFilter{Source: "waitlist", Status: "new"})
	sourceFirst := usecase.FilterLeads(usecase.FilterLeads(leads, usecase.LeadFilter{Source: "waitlist"}), usecase.LeadFilter{Status: "new"})
	statusFirst := usecase.FilterLeads(usecase.FilterLeads(leads, usecase.LeadFilter{Status: "new"}), usecase.LeadFilter{Source: "waitlist"})

	assert.Equal(t, combined, sourceFirst)
	assert.Equal(t, combined, statusFirst)
}

func TestFilterSearchMatchesAnyIdentityField(t *testing.T) {
	leads := sampleLeads()

	// Nome, case-insensitive
	out := usecase.FilterLeads(leads, usecase.LeadFilter{Search: "bRuNo"})
	assert.Len(t, out, 1)
	assert.Equal(t, "bruno@example.com", out[0].ContactKey)

	// Email
	out = usecase.FilterLeads(leads, usecase.LeadFilter{Search: "carla@"})
	assert.Len(t, out, 1)
	assert.Equal(t, "carla@example.com", out[0].ContactKey)

	// Telefone cru, com formatação
	out = usecase.FilterLeads(leads, usecase.LeadFilter{Search: "(41) 96666"})
	assert.Len(t, out, 1)
	assert.Equal(t, "diego@example.com", out[0].ContactKey)
}

func TestFilterSearchNoMatch(t *testing.T) {
	out := usecase.FilterLeads(sampleLeads(), usecase.LeadFilter{Search: "zeca"})
	assert.Empty(t, out)
}

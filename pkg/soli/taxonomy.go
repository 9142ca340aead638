package soli

import (
	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/owl"
)

// SOLIType names one of the ontology's top-level taxonomy branches.
type SOLIType string

const (
	ActorPlayer            SOLIType = "Actor / Player"
	AreaOfLaw              SOLIType = "Area of Law"
	AssetType              SOLIType = "Asset Type"
	CommunicationModality  SOLIType = "Communication Modality"
	Currency               SOLIType = "Currency"
	DataFormat             SOLIType = "Data Format"
	DocumentArtifact       SOLIType = "Document / Artifact"
	EngagementTerms        SOLIType = "Engagement Terms"
	Event                  SOLIType = "Event"
	ForumsVenues           SOLIType = "Forums and Venues"
	GovernmentalBody       SOLIType = "Governmental Body"
	Industry               SOLIType = "Industry"
	Language               SOLIType = "Language"
	SOLITypeBranch         SOLIType = "SOLI Type"
	LegalAuthorities       SOLIType = "Legal Authorities"
	LegalEntity            SOLIType = "Legal Entity"
	Location               SOLIType = "Location"
	MatterNarrative        SOLIType = "Matter Narrative"
	MatterNarrativeFormat  SOLIType = "Matter Narrative Format"
	Objectives             SOLIType = "Objectives"
	Service                SOLIType = "Service"
	StandardsCompatibility SOLIType = "Standards Compatibility"
	Status                 SOLIType = "Status"
	SystemIdentifiers      SOLIType = "System Identifiers"
)

// TypeIRIs maps each taxonomy branch to the bare suffix of its root
// class IRI.
var TypeIRIs = map[SOLIType]string{
	ActorPlayer:            "R8CdMpOM0RmyrgCCvbpiLS0",
	AreaOfLaw:              "RSYBzf149Mi5KE0YtmpUmr",
	AssetType:              "RCIwc6WJi6IT7xePURxsi4T",
	CommunicationModality:  "R8qItBwG2pRMFhUq1HQEMnb",
	Currency:               "R767niCLQVC5zIcO5WDQMSl",
	DataFormat:             "R79aItNTJQwHgR002wuX3iC",
	DocumentArtifact:       "RDt4vQCYDfY0R9fZ5FNnTbj",
	EngagementTerms:        "R9kmGZf5FSmFdouXWQ1Nndm",
	Event:                  "R73hoH1RXYjBTYiGfolpsAF",
	ForumsVenues:           "RBjHwNNG2ASVmasLFU42otk",
	GovernmentalBody:       "RBQGborh1CfXanGZipDL0Qo",
	Industry:               "RDIwFaFcH4KY0gwEY0QlMTp",
	Language:               "RDOvAHsvY8TKJ1O1orXPM9o",
	SOLITypeBranch:         "R8uI6AZ9vSgpAdKmfGZKfTZ",
	LegalAuthorities:       "RC1CZydjfH8oiM4W3rCkma3",
	LegalEntity:            "R7L5eLIzH0CpOUE74uJvSjL",
	Location:               "R9aSzp9cEiBCzObnP92jYFX",
	MatterNarrative:        "R7ReDY2v13rer1U8AyOj55L",
	MatterNarrativeFormat:  "R8ONVC8pLVJC5dD4eKqCiZL",
	Objectives:             "RlNFgB3TQfMzV26V4V7u4E",
	Service:                "RDK1QEdQg1T8B5HQqMK2pZN",
	StandardsCompatibility: "RB4cFSLB4xvycDlKv73dOg6",
	Status:                 "Rx69EnEj3H3TpcgTfUSoYx",
	SystemIdentifiers:      "R8EoZh39tWmXCkmP2Xzjl6E",
}

// TypeIRI returns the canonical absolute IRI of a taxonomy branch root.
func TypeIRI(t SOLIType) string {
	return graph.BaseIRI + TypeIRIs[t]
}

// GetByType returns the classes under one taxonomy branch root.
func (c *Client) GetByType(t SOLIType, maxDepth int) []*owl.OWLClass {
	return c.GetChildren(TypeIRI(t), maxDepth)
}

// GetPlayerActors returns the actor/player classes.
func (c *Client) GetPlayerActors(maxDepth int) []*owl.OWLClass {
	return c.GetByType(ActorPlayer, maxDepth)
}

// GetAreasOfLaw returns the area-of-law classes.
func (c *Client) GetAreasOfLaw(maxDepth int) []*owl.OWLClass {
	return c.GetByType(AreaOfLaw, maxDepth)
}

// GetAssetTypes returns the asset type classes.
func (c *Client) GetAssetTypes(maxDepth int) []*owl.OWLClass {
	return c.GetByType(AssetType, maxDepth)
}

// GetCommunicationModalities returns the communication modality classes.
func (c *Client) GetCommunicationModalities(maxDepth int) []*owl.OWLClass {
	return c.GetByType(CommunicationModality, maxDepth)
}

// GetCurrencies returns the currency classes.
func (c *Client) GetCurrencies(maxDepth int) []*owl.OWLClass {
	return c.GetByType(Currency, maxDepth)
}

// GetDataFormats returns the data format classes.
func (c *Client) GetDataFormats(maxDepth int) []*owl.OWLClass {
	return c.GetByType(DataFormat, maxDepth)
}

// GetDocumentArtifacts returns the document/artifact classes.
func (c *Client) GetDocumentArtifacts(maxDepth int) []*owl.OWLClass {
	return c.GetByType(DocumentArtifact, maxDepth)
}

// GetEngagementTerms returns the engagement terms classes.
func (c *Client) GetEngagementTerms(maxDepth int) []*owl.OWLClass {
	return c.GetByType(EngagementTerms, maxDepth)
}

// GetEvents returns the event classes.
func (c *Client) GetEvents(maxDepth int) []*owl.OWLClass {
	return c.GetByType(Event, maxDepth)
}

// GetForumVenues returns the forums and venues classes.
func (c *Client) GetForumVenues(maxDepth int) []*owl.OWLClass {
	return c.GetByType(ForumsVenues, maxDepth)
}

// GetGovernmentalBodies returns the governmental body classes.
func (c *Client) GetGovernmentalBodies(maxDepth int) []*owl.OWLClass {
	return c.GetByType(GovernmentalBody, maxDepth)
}

// GetIndustries returns the industry classes.
func (c *Client) GetIndustries(maxDepth int) []*owl.OWLClass {
	return c.GetByType(Industry, maxDepth)
}

// GetLanguages returns the language classes.
func (c *Client) GetLanguages(maxDepth int) []*owl.OWLClass {
	return c.GetByType(Language, maxDepth)
}

// GetSOLITypes returns the SOLI type classes.
func (c *Client) GetSOLITypes(maxDepth int) []*owl.OWLClass {
	return c.GetByType(SOLITypeBranch, maxDepth)
}

// GetLegalAuthorities returns the legal authority classes.
func (c *Client) GetLegalAuthorities(maxDepth int) []*owl.OWLClass {
	return c.GetByType(LegalAuthorities, maxDepth)
}

// GetLegalEntities returns the legal entity classes.
func (c *Client) GetLegalEntities(maxDepth int) []*owl.OWLClass {
	return c.GetByType(LegalEntity, maxDepth)
}

// GetLocations returns the location classes.
func (c *Client) GetLocations(maxDepth int) []*owl.OWLClass {
	return c.GetByType(Location, maxDepth)
}

// GetMatterNarratives returns the matter narrative classes.
func (c *Client) GetMatterNarratives(maxDepth int) []*owl.OWLClass {
	return c.GetByType(MatterNarrative, maxDepth)
}

// GetMatterNarrativeFormats returns the matter narrative format classes.
func (c *Client) GetMatterNarrativeFormats(maxDepth int) []*owl.OWLClass {
	return c.GetByType(MatterNarrativeFormat, maxDepth)
}

// GetObjectives returns the objective classes.
func (c *Client) GetObjectives(maxDepth int) []*owl.OWLClass {
	return c.GetByType(Objectives, maxDepth)
}

// GetServices returns the service classes.
func (c *Client) GetServices(maxDepth int) []*owl.OWLClass {
	return c.GetByType(Service, maxDepth)
}

// GetStandardsCompatibilities returns the standards compatibility classes.
func (c *Client) GetStandardsCompatibilities(maxDepth int) []*owl.OWLClass {
	return c.GetByType(StandardsCompatibility, maxDepth)
}

// GetStatuses returns the status classes.
func (c *Client) GetStatuses(maxDepth int) []*owl.OWLClass {
	return c.GetByType(Status, maxDepth)
}

// GetSystemIdentifiers returns the system identifier classes.
func (c *Client) GetSystemIdentifiers(maxDepth int) []*owl.OWLClass {
	return c.GetByType(SystemIdentifiers, maxDepth)
}

// AllTypes returns every taxonomy branch name.
func AllTypes() []SOLIType {
	return []SOLIType{
		ActorPlayer, AreaOfLaw, AssetType, CommunicationModality, Currency,
		DataFormat, DocumentArtifact, EngagementTerms, Event, ForumsVenues,
		GovernmentalBody, Industry, Language, SOLITypeBranch, LegalAuthorities,
		LegalEntity, Location, MatterNarrative, MatterNarrativeFormat,
		Objectives, Service, StandardsCompatibility, Status, SystemIdentifiers,
	}
}

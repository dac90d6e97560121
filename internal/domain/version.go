package domain

// VersionNumber identifies an OCPI protocol release, e.g. "2.2.1".
type VersionNumber string

const Version221 VersionNumber = "2.2.1"

// ModuleID names an OCPI module exposed under a version.
type ModuleID string

const (
	ModuleCredentials ModuleID = "credentials"
	ModuleLocations   ModuleID = "locations"
	ModuleSessions    ModuleID = "sessions"
	ModuleCDRs        ModuleID = "cdrs"
	ModuleTariffs     ModuleID = "tariffs"
	ModuleTokens      ModuleID = "tokens"
	ModuleCommands    ModuleID = "commands"
)

// InterfaceRole is the direction of a module endpoint.
type InterfaceRole string

const (
	RoleSender   InterfaceRole = "SENDER"
	RoleReceiver InterfaceRole = "RECEIVER"
)

func (r InterfaceRole) IsValid() bool {
	switch r {
	case RoleSender, RoleReceiver:
		return true
	}
	return false
}

// Version is one entry of the GET /versions list.
type Version struct {
	Version VersionNumber `json:"version"`
	URL     string        `json:"url"`
}

// Endpoint describes where a module lives and which side of it we implement.
type Endpoint struct {
	Identifier ModuleID      `json:"identifier"`
	Role       InterfaceRole `json:"role"`
	URL        string        `json:"url"`
}

// VersionDetail is the payload of GET /versions/{version_id}.
type VersionDetail struct {
	Version   VersionNumber `json:"version"`
	Endpoints []Endpoint    `json:"endpoints"`
}

// ModuleRole pairs a module with the role this platform plays for it.
type ModuleRole struct {
	Module ModuleID
	Role   InterfaceRole
}

// Modules221 is the ordered module table advertised for 2.2.1.
var Modules221 = []ModuleRole{
	{ModuleCredentials, RoleReceiver},
	{ModuleLocations, RoleSender},
	{ModuleSessions, RoleSender},
	{ModuleCDRs, RoleSender},
	{ModuleTariffs, RoleSender},
	{ModuleTokens, RoleReceiver},
	{ModuleCommands, RoleReceiver},
}

package tableinfo

const (
	ProjectsTableName = "projects"

	ProjectIDColumn          = "id"
	ProjectCodeColumn        = "code"
	ProjectNameColumn        = "name"
	ProjectDescriptionColumn = "description"
	ProjectCreatedAtColumn   = "created_at"
)

const (
	UsersTableName = "users"

	UserIDColumn        = "id"
	UserEmailColumn     = "email"
	UserNameColumn      = "name"
	UserRoleColumn      = "role"
	UserLockedColumn    = "locked"
	UserCreatedAtColumn = "created_at"
)

const (
	ActionsTableName = "actions"

	ActionIDColumn        = "id"
	ActionUserIDColumn    = "user_id"
	ActionProjectIDColumn = "project_id"
	ActionVerbColumn      = "verb"
	ActionContentIDColumn = "content_id"
	ActionResultColumn    = "result"
	ActionTimestampColumn = "timestamp"
	ActionCreatedAtColumn = "created_at"
)

const (
	ContentTableName = "content"

	ContentIDColumn          = "id"
	ContentProjectIDColumn   = "project_id"
	ContentCodeColumn        = "code"
	ContentNameColumn        = "name"
	ContentDescriptionColumn = "description"
	ContentKindColumn        = "kind"
	ContentURLColumn         = "url"
	ContentTagsColumn        = "tags"
	ContentCreatedAtColumn   = "created_at"
)

const (
	DomainsTableName = "domains"

	DomainIDColumn        = "id"
	DomainProjectIDColumn = "project_id"
	DomainCodeColumn      = "code"
	DomainNameColumn      = "name"
	DomainCreatedAtColumn = "created_at"
)

const (
	TopicsTableName = "topics"

	TopicIDColumn        = "id"
	TopicDomainIDColumn  = "domain_id"
	TopicParentIDColumn  = "parent_id"
	TopicCodeColumn      = "code"
	TopicNameColumn      = "name"
	TopicCreatedAtColumn = "created_at"
)

const (
	KCsTableName = "kcs"

	KCIDColumn        = "id"
	KCDomainIDColumn  = "domain_id"
	KCCodeColumn      = "code"
	KCNameColumn      = "name"
	KCCreatedAtColumn = "created_at"
)

const (
	ModelStatesTableName = "model_states"

	ModelStateIDColumn        = "id"
	ModelStateUserIDColumn    = "user_id"
	ModelStateDomainIDColumn  = "domain_id"
	ModelStateTypeColumn      = "type"
	ModelStateCreatorColumn   = "creator"
	ModelStateDataColumn      = "data"
	ModelStateCreatedAtColumn = "created_at"
)

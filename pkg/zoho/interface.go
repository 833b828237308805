package zoho

import "context"

// CRM is the full operation surface of a tenant client.
type CRM interface {
	TestConnection(ctx context.Context) ConnectionStatus

	// Contacts
	ListContacts(ctx context.Context, params PageParams) (*Page[Contact], error)
	GetContact(ctx context.Context, id string) (*Contact, error)
	CreateContact(ctx context.Context, in ContactInput) (*Contact, error)
	UpdateContact(ctx context.Context, id string, in ContactInput) (*Contact, error)
	DeleteContact(ctx context.Context, id string) error
	SearchContacts(ctx context.Context, params SearchParams) (*Page[Contact], error)

	// Companies
	ListCompanies(ctx context.Context, params PageParams) (*Page[Company], error)
	GetCompany(ctx context.Context, id string) (*Company, error)
	CreateCompany(ctx context.Context, in CompanyInput) (*Company, error)
	UpdateCompany(ctx context.Context, id string, in CompanyInput) (*Company, error)

	// Deals
	ListDeals(ctx context.Context, params PageParams) (*Page[Deal], error)
	GetDeal(ctx context.Context, id string) (*Deal, error)
	CreateDeal(ctx context.Context, in DealInput) (*Deal, error)
	UpdateDeal(ctx context.Context, id string, in DealInput) (*Deal, error)
	MoveDealStage(ctx context.Context, id, stageID string) (*Deal, error)
	ListPipelines(ctx context.Context) ([]Pipeline, error)

	// Activities
	ListActivities(ctx context.Context, params ActivityParams) (*Page[Activity], error)
	CreateActivity(ctx context.Context, in ActivityInput) (*Activity, error)
	LogCall(ctx context.Context, contactID, subject, notes string, durationMinutes int) (*Activity, error)
	LogEmail(ctx context.Context, contactID, subject, body, direction string) (*Activity, error)

	// Leads
	ListLeads(ctx context.Context, params PageParams) (*Page[Lead], error)
	GetLead(ctx context.Context, id string) (*Lead, error)
	CreateLead(ctx context.Context, in LeadInput) (*Lead, error)
	UpdateLead(ctx context.Context, id string, in LeadInput) (*Lead, error)
	DeleteLead(ctx context.Context, id string) error
	SearchLeads(ctx context.Context, params SearchParams) (*Page[Lead], error)
	ConvertLead(ctx context.Context, id string, in LeadConvertInput) (*LeadConversion, error)

	// Products
	ListProducts(ctx context.Context, params PageParams) (*Page[Product], error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SearchProducts(ctx context.Context, params SearchParams) (*Page[Product], error)

	// Quotes
	ListQuotes(ctx context.Context, params PageParams) (*Page[Quote], error)
	GetQuote(ctx context.Context, id string) (*Quote, error)
	CreateQuote(ctx context.Context, in QuoteInput) (*Quote, error)
	UpdateQuote(ctx context.Context, id string, in QuoteInput) (*Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	SearchQuotes(ctx context.Context, params SearchParams) (*Page[Quote], error)

	// Sales orders
	ListSalesOrders(ctx context.Context, params PageParams) (*Page[SalesOrder], error)
	GetSalesOrder(ctx context.Context, id string) (*SalesOrder, error)
	CreateSalesOrder(ctx context.Context, in SalesOrderInput) (*SalesOrder, error)
	UpdateSalesOrder(ctx context.Context, id string, in SalesOrderInput) (*SalesOrder, error)
	DeleteSalesOrder(ctx context.Context, id string) error

	// Purchase orders
	ListPurchaseOrders(ctx context.Context, params PageParams) (*Page[PurchaseOrder], error)
	GetPurchaseOrder(ctx context.Context, id string) (*PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, in PurchaseOrderInput) (*PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, id string, in PurchaseOrderInput) (*PurchaseOrder, error)
	DeletePurchaseOrder(ctx context.Context, id string) error

	// Invoices
	ListInvoices(ctx context.Context, params PageParams) (*Page[Invoice], error)
	GetInvoice(ctx context.Context, id string) (*Invoice, error)
	CreateInvoice(ctx context.Context, in InvoiceInput) (*Invoice, error)
	UpdateInvoice(ctx context.Context, id string, in InvoiceInput) (*Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	SearchInvoices(ctx context.Context, params SearchParams) (*Page[Invoice], error)

	// Vendors
	ListVendors(ctx context.Context, params PageParams) (*Page[Vendor], error)
	GetVendor(ctx context.Context, id string) (*Vendor, error)
	CreateVendor(ctx context.Context, in VendorInput) (*Vendor, error)
	UpdateVendor(ctx context.Context, id string, in VendorInput) (*Vendor, error)
	DeleteVendor(ctx context.Context, id string) error
	SearchVendors(ctx context.Context, params SearchParams) (*Page[Vendor], error)

	// Price books
	ListPriceBooks(ctx context.Context, params PageParams) (*Page[PriceBook], error)
	GetPriceBook(ctx context.Context, id string) (*PriceBook, error)
	CreatePriceBook(ctx context.Context, in PriceBookInput) (*PriceBook, error)
	UpdatePriceBook(ctx context.Context, id string, in PriceBookInput) (*PriceBook, error)
	DeletePriceBook(ctx context.Context, id string) error

	// Campaigns
	ListCampaigns(ctx context.Context, params PageParams) (*Page[Campaign], error)
	GetCampaign(ctx context.Context, id string) (*Campaign, error)
	CreateCampaign(ctx context.Context, in CampaignInput) (*Campaign, error)
	UpdateCampaign(ctx context.Context, id string, in CampaignInput) (*Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
	SearchCampaigns(ctx context.Context, params SearchParams) (*Page[Campaign], error)

	// Cases
	ListCases(ctx context.Context, params PageParams) (*Page[Case], error)
	GetCase(ctx context.Context, id string) (*Case, error)
	CreateCase(ctx context.Context, in CaseInput) (*Case, error)
	UpdateCase(ctx context.Context, id string, in CaseInput) (*Case, error)
	DeleteCase(ctx context.Context, id string) error
	SearchCases(ctx context.Context, params SearchParams) (*Page[Case], error)

	// Solutions
	ListSolutions(ctx context.Context, params PageParams) (*Page[Solution], error)
	GetSolution(ctx context.Context, id string) (*Solution, error)
	CreateSolution(ctx context.Context, in SolutionInput) (*Solution, error)
	UpdateSolution(ctx context.Context, id string, in SolutionInput) (*Solution, error)
	DeleteSolution(ctx context.Context, id string) error
	SearchSolutions(ctx context.Context, params SearchParams) (*Page[Solution], error)

	// Events
	ListEvents(ctx context.Context, params PageParams) (*Page[Event], error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, in EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, id string, in EventInput) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	SearchEvents(ctx context.Context, params SearchParams) (*Page[Event], error)

	// Notes
	ListNotes(ctx context.Context, params PageParams) (*Page[Note], error)
	GetNote(ctx context.Context, id string) (*Note, error)
	CreateNote(ctx context.Context, in NoteInput) (*Note, error)
	UpdateNote(ctx context.Context, id string, in NoteInput) (*Note, error)
	DeleteNote(ctx context.Context, id string) error
	ListRecordNotes(ctx context.Context, moduleName, recordID string, params PageParams) (*Page[Note], error)
	AddNoteToRecord(ctx context.Context, moduleName, recordID string, in NoteInput) (*Note, error)

	// Attachments
	ListAttachments(ctx context.Context, moduleName, recordID string, params PageParams) (*Page[Attachment], error)
	DeleteAttachment(ctx context.Context, moduleName, recordID, attachmentID string) error

	ExecuteCOQL(ctx context.Context, query string) (*COQLResult, error)

	// Bulk
	CreateBulkReadJob(ctx context.Context, req BulkReadRequest) (*BulkReadJob, error)
	GetBulkReadJob(ctx context.Context, id string) (*BulkReadJob, error)
	CreateBulkWriteJob(ctx context.Context, req BulkWriteRequest) (*BulkWriteJob, error)
	GetBulkWriteJob(ctx context.Context, id string) (*BulkWriteJob, error)

	// Notifications
	EnableNotifications(ctx context.Context, channels []NotificationChannel) ([]NotificationChannel, error)
	DisableNotifications(ctx context.Context, channelIDs []string) error
	GetNotificationDetails(ctx context.Context) ([]NotificationChannel, error)

	// Related records
	ListRelatedRecords(ctx context.Context, moduleName, recordID, relatedList string, params PageParams) (*Page[Record], error)
	AddRelatedRecord(ctx context.Context, moduleName, recordID, relatedList, relatedRecordID string) error
	RemoveRelatedRecord(ctx context.Context, moduleName, recordID, relatedList, relatedRecordID string) error

	// Metadata
	ListModules(ctx context.Context) ([]ModuleInfo, error)
	GetModule(ctx context.Context, apiName string) (*ModuleInfo, error)
	ListFields(ctx context.Context, moduleName string) ([]FieldInfo, error)
	ListLayouts(ctx context.Context, moduleName string) ([]Layout, error)
	ListCustomViews(ctx context.Context, moduleName string) ([]CustomView, error)
	ListRelatedLists(ctx context.Context, moduleName string) ([]RelatedList, error)

	// Tags
	ListTags(ctx context.Context, moduleName string) ([]Tag, error)
	CreateTag(ctx context.Context, moduleName string, in TagInput) (*Tag, error)
	UpdateTag(ctx context.Context, moduleName, tagID string, in TagInput) (*Tag, error)
	DeleteTag(ctx context.Context, tagID string) error
	AddTagsToRecords(ctx context.Context, moduleName string, recordIDs, tagNames []string) error
	RemoveTagsFromRecords(ctx context.Context, moduleName string, recordIDs, tagNames []string) error

	// Users and access
	ListUsers(ctx context.Context, userType string) ([]User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	GetCurrentUser(ctx context.Context) (*User, error)
	ListProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, id string) (*Profile, error)
	ListRoles(ctx context.Context) ([]Role, error)
	GetRole(ctx context.Context, id string) (*Role, error)
}

var _ CRM = (*Client)(nil)

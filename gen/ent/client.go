// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/billfold/invoice-ingest/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/billfold/invoice-ingest/gen/ent/contentblob"
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/invoice"
	"github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContentBlob is the client for interacting with the ContentBlob builders.
	ContentBlob *ContentBlobClient
	// IngestJob is the client for interacting with the IngestJob builders.
	IngestJob *IngestJobClient
	// Invoice is the client for interacting with the Invoice builders.
	Invoice *InvoiceClient
	// JobBatch is the client for interacting with the JobBatch builders.
	JobBatch *JobBatchClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContentBlob = NewContentBlobClient(c.config)
	c.IngestJob = NewIngestJobClient(c.config)
	c.Invoice = NewInvoiceClient(c.config)
	c.JobBatch = NewJobBatchClient(c.config)
	c.Profile = NewProfileClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		ContentBlob: NewContentBlobClient(cfg),
		IngestJob:   NewIngestJobClient(cfg),
		Invoice:     NewInvoiceClient(cfg),
		JobBatch:    NewJobBatchClient(cfg),
		Profile:     NewProfileClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		ContentBlob: NewContentBlobClient(cfg),
		IngestJob:   NewIngestJobClient(cfg),
		Invoice:     NewInvoiceClient(cfg),
		JobBatch:    NewJobBatchClient(cfg),
		Profile:     NewProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContentBlob.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ContentBlob.Use(hooks...)
	c.IngestJob.Use(hooks...)
	c.Invoice.Use(hooks...)
	c.JobBatch.Use(hooks...)
	c.Profile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ContentBlob.Intercept(interceptors...)
	c.IngestJob.Intercept(interceptors...)
	c.Invoice.Intercept(interceptors...)
	c.JobBatch.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContentBlobMutation:
		return c.ContentBlob.mutate(ctx, m)
	case *IngestJobMutation:
		return c.IngestJob.mutate(ctx, m)
	case *InvoiceMutation:
		return c.Invoice.mutate(ctx, m)
	case *JobBatchMutation:
		return c.JobBatch.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContentBlobClient is a client for the ContentBlob schema.
type ContentBlobClient struct {
	config
}

// NewContentBlobClient returns a client for the ContentBlob from the given config.
func NewContentBlobClient(c config) *ContentBlobClient {
	return &ContentBlobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentblob.Hooks(f(g(h())))`.
func (c *ContentBlobClient) Use(hooks ...Hook) {
	c.hooks.ContentBlob = append(c.hooks.ContentBlob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentblob.Intercept(f(g(h())))`.
func (c *ContentBlobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentBlob = append(c.inters.ContentBlob, interceptors...)
}

// Create returns a builder for creating a ContentBlob entity.
func (c *ContentBlobClient) Create() *ContentBlobCreate {
	mutation := newContentBlobMutation(c.config, OpCreate)
	return &ContentBlobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentBlob entities.
func (c *ContentBlobClient) CreateBulk(builders ...*ContentBlobCreate) *ContentBlobCreateBulk {
	return &ContentBlobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentBlobClient) MapCreateBulk(slice any, setFunc func(*ContentBlobCreate, int)) *ContentBlobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentBlobCreateBulk{err: fmt.Errorf("calling to ContentBlobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentBlobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentBlobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentBlob.
func (c *ContentBlobClient) Update() *ContentBlobUpdate {
	mutation := newContentBlobMutation(c.config, OpUpdate)
	return &ContentBlobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentBlobClient) UpdateOne(_m *ContentBlob) *ContentBlobUpdateOne {
	mutation := newContentBlobMutation(c.config, OpUpdateOne, withContentBlob(_m))
	return &ContentBlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentBlobClient) UpdateOneID(id uuid.UUID) *ContentBlobUpdateOne {
	mutation := newContentBlobMutation(c.config, OpUpdateOne, withContentBlobID(id))
	return &ContentBlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentBlob.
func (c *ContentBlobClient) Delete() *ContentBlobDelete {
	mutation := newContentBlobMutation(c.config, OpDelete)
	return &ContentBlobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentBlobClient) DeleteOne(_m *ContentBlob) *ContentBlobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentBlobClient) DeleteOneID(id uuid.UUID) *ContentBlobDeleteOne {
	builder := c.Delete().Where(contentblob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentBlobDeleteOne{builder}
}

// Query returns a query builder for ContentBlob.
func (c *ContentBlobClient) Query() *ContentBlobQuery {
	return &ContentBlobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentBlob},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentBlob entity by its id.
func (c *ContentBlobClient) Get(ctx context.Context, id uuid.UUID) (*ContentBlob, error) {
	return c.Query().Where(contentblob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentBlobClient) GetX(ctx context.Context, id uuid.UUID) *ContentBlob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a ContentBlob.
func (c *ContentBlobClient) QueryProfile(_m *ContentBlob) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contentblob.Table, contentblob.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contentblob.ProfileTable, contentblob.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvoices queries the invoices edge of a ContentBlob.
func (c *ContentBlobClient) QueryInvoices(_m *ContentBlob) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contentblob.Table, contentblob.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contentblob.InvoicesTable, contentblob.InvoicesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContentBlobClient) Hooks() []Hook {
	return c.hooks.ContentBlob
}

// Interceptors returns the client interceptors.
func (c *ContentBlobClient) Interceptors() []Interceptor {
	return c.inters.ContentBlob
}

func (c *ContentBlobClient) mutate(ctx context.Context, m *ContentBlobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentBlobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentBlobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentBlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentBlobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentBlob mutation op: %q", m.Op())
	}
}

// IngestJobClient is a client for the IngestJob schema.
type IngestJobClient struct {
	config
}

// NewIngestJobClient returns a client for the IngestJob from the given config.
func NewIngestJobClient(c config) *IngestJobClient {
	return &IngestJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestjob.Hooks(f(g(h())))`.
func (c *IngestJobClient) Use(hooks ...Hook) {
	c.hooks.IngestJob = append(c.hooks.IngestJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestjob.Intercept(f(g(h())))`.
func (c *IngestJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestJob = append(c.inters.IngestJob, interceptors...)
}

// Create returns a builder for creating a IngestJob entity.
func (c *IngestJobClient) Create() *IngestJobCreate {
	mutation := newIngestJobMutation(c.config, OpCreate)
	return &IngestJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestJob entities.
func (c *IngestJobClient) CreateBulk(builders ...*IngestJobCreate) *IngestJobCreateBulk {
	return &IngestJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestJobClient) MapCreateBulk(slice any, setFunc func(*IngestJobCreate, int)) *IngestJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestJobCreateBulk{err: fmt.Errorf("calling to IngestJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestJob.
func (c *IngestJobClient) Update() *IngestJobUpdate {
	mutation := newIngestJobMutation(c.config, OpUpdate)
	return &IngestJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestJobClient) UpdateOne(_m *IngestJob) *IngestJobUpdateOne {
	mutation := newIngestJobMutation(c.config, OpUpdateOne, withIngestJob(_m))
	return &IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestJobClient) UpdateOneID(id uuid.UUID) *IngestJobUpdateOne {
	mutation := newIngestJobMutation(c.config, OpUpdateOne, withIngestJobID(id))
	return &IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestJob.
func (c *IngestJobClient) Delete() *IngestJobDelete {
	mutation := newIngestJobMutation(c.config, OpDelete)
	return &IngestJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestJobClient) DeleteOne(_m *IngestJob) *IngestJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestJobClient) DeleteOneID(id uuid.UUID) *IngestJobDeleteOne {
	builder := c.Delete().Where(ingestjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestJobDeleteOne{builder}
}

// Query returns a query builder for IngestJob.
func (c *IngestJobClient) Query() *IngestJobQuery {
	return &IngestJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestJob},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestJob entity by its id.
func (c *IngestJobClient) Get(ctx context.Context, id uuid.UUID) (*IngestJob, error) {
	return c.Query().Where(ingestjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestJobClient) GetX(ctx context.Context, id uuid.UUID) *IngestJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a IngestJob.
func (c *IngestJobClient) QueryProfile(_m *IngestJob) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ingestjob.Table, ingestjob.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ingestjob.ProfileTable, ingestjob.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBatches queries the batches edge of a IngestJob.
func (c *IngestJobClient) QueryBatches(_m *IngestJob) *JobBatchQuery {
	query := (&JobBatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ingestjob.Table, ingestjob.FieldID, id),
			sqlgraph.To(jobbatch.Table, jobbatch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ingestjob.BatchesTable, ingestjob.BatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IngestJobClient) Hooks() []Hook {
	return c.hooks.IngestJob
}

// Interceptors returns the client interceptors.
func (c *IngestJobClient) Interceptors() []Interceptor {
	return c.inters.IngestJob
}

func (c *IngestJobClient) mutate(ctx context.Context, m *IngestJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestJob mutation op: %q", m.Op())
	}
}

// InvoiceClient is a client for the Invoice schema.
type InvoiceClient struct {
	config
}

// NewInvoiceClient returns a client for the Invoice from the given config.
func NewInvoiceClient(c config) *InvoiceClient {
	return &InvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoice.Hooks(f(g(h())))`.
func (c *InvoiceClient) Use(hooks ...Hook) {
	c.hooks.Invoice = append(c.hooks.Invoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoice.Intercept(f(g(h())))`.
func (c *InvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Invoice = append(c.inters.Invoice, interceptors...)
}

// Create returns a builder for creating a Invoice entity.
func (c *InvoiceClient) Create() *InvoiceCreate {
	mutation := newInvoiceMutation(c.config, OpCreate)
	return &InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Invoice entities.
func (c *InvoiceClient) CreateBulk(builders ...*InvoiceCreate) *InvoiceCreateBulk {
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceClient) MapCreateBulk(slice any, setFunc func(*InvoiceCreate, int)) *InvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceCreateBulk{err: fmt.Errorf("calling to InvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Invoice.
func (c *InvoiceClient) Update() *InvoiceUpdate {
	mutation := newInvoiceMutation(c.config, OpUpdate)
	return &InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceClient) UpdateOne(_m *Invoice) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoice(_m))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceClient) UpdateOneID(id uuid.UUID) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoiceID(id))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Invoice.
func (c *InvoiceClient) Delete() *InvoiceDelete {
	mutation := newInvoiceMutation(c.config, OpDelete)
	return &InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceClient) DeleteOne(_m *Invoice) *InvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceClient) DeleteOneID(id uuid.UUID) *InvoiceDeleteOne {
	builder := c.Delete().Where(invoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceDeleteOne{builder}
}

// Query returns a query builder for Invoice.
func (c *InvoiceClient) Query() *InvoiceQuery {
	return &InvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a Invoice entity by its id.
func (c *InvoiceClient) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return c.Query().Where(invoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceClient) GetX(ctx context.Context, id uuid.UUID) *Invoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a Invoice.
func (c *InvoiceClient) QueryProfile(_m *Invoice) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invoice.ProfileTable, invoice.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlob queries the blob edge of a Invoice.
func (c *InvoiceClient) QueryBlob(_m *Invoice) *ContentBlobQuery {
	query := (&ContentBlobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(contentblob.Table, contentblob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invoice.BlobTable, invoice.BlobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceClient) Hooks() []Hook {
	return c.hooks.Invoice
}

// Interceptors returns the client interceptors.
func (c *InvoiceClient) Interceptors() []Interceptor {
	return c.inters.Invoice
}

func (c *InvoiceClient) mutate(ctx context.Context, m *InvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Invoice mutation op: %q", m.Op())
	}
}

// JobBatchClient is a client for the JobBatch schema.
type JobBatchClient struct {
	config
}

// NewJobBatchClient returns a client for the JobBatch from the given config.
func NewJobBatchClient(c config) *JobBatchClient {
	return &JobBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobbatch.Hooks(f(g(h())))`.
func (c *JobBatchClient) Use(hooks ...Hook) {
	c.hooks.JobBatch = append(c.hooks.JobBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobbatch.Intercept(f(g(h())))`.
func (c *JobBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobBatch = append(c.inters.JobBatch, interceptors...)
}

// Create returns a builder for creating a JobBatch entity.
func (c *JobBatchClient) Create() *JobBatchCreate {
	mutation := newJobBatchMutation(c.config, OpCreate)
	return &JobBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobBatch entities.
func (c *JobBatchClient) CreateBulk(builders ...*JobBatchCreate) *JobBatchCreateBulk {
	return &JobBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobBatchClient) MapCreateBulk(slice any, setFunc func(*JobBatchCreate, int)) *JobBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobBatchCreateBulk{err: fmt.Errorf("calling to JobBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobBatch.
func (c *JobBatchClient) Update() *JobBatchUpdate {
	mutation := newJobBatchMutation(c.config, OpUpdate)
	return &JobBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobBatchClient) UpdateOne(_m *JobBatch) *JobBatchUpdateOne {
	mutation := newJobBatchMutation(c.config, OpUpdateOne, withJobBatch(_m))
	return &JobBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobBatchClient) UpdateOneID(id uuid.UUID) *JobBatchUpdateOne {
	mutation := newJobBatchMutation(c.config, OpUpdateOne, withJobBatchID(id))
	return &JobBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobBatch.
func (c *JobBatchClient) Delete() *JobBatchDelete {
	mutation := newJobBatchMutation(c.config, OpDelete)
	return &JobBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobBatchClient) DeleteOne(_m *JobBatch) *JobBatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobBatchClient) DeleteOneID(id uuid.UUID) *JobBatchDeleteOne {
	builder := c.Delete().Where(jobbatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobBatchDeleteOne{builder}
}

// Query returns a query builder for JobBatch.
func (c *JobBatchClient) Query() *JobBatchQuery {
	return &JobBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a JobBatch entity by its id.
func (c *JobBatchClient) Get(ctx context.Context, id uuid.UUID) (*JobBatch, error) {
	return c.Query().Where(jobbatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobBatchClient) GetX(ctx context.Context, id uuid.UUID) *JobBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobBatch.
func (c *JobBatchClient) QueryJob(_m *JobBatch) *IngestJobQuery {
	query := (&IngestJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobbatch.Table, jobbatch.FieldID, id),
			sqlgraph.To(ingestjob.Table, ingestjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobbatch.JobTable, jobbatch.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobBatchClient) Hooks() []Hook {
	return c.hooks.JobBatch
}

// Interceptors returns the client interceptors.
func (c *JobBatchClient) Interceptors() []Interceptor {
	return c.inters.JobBatch
}

func (c *JobBatchClient) mutate(ctx context.Context, m *JobBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobBatch mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlobs queries the blobs edge of a Profile.
func (c *ProfileClient) QueryBlobs(_m *Profile) *ContentBlobQuery {
	query := (&ContentBlobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(contentblob.Table, contentblob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.BlobsTable, profile.BlobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvoices queries the invoices edge of a Profile.
func (c *ProfileClient) QueryInvoices(_m *Profile) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.InvoicesTable, profile.InvoicesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Profile.
func (c *ProfileClient) QueryJobs(_m *Profile) *IngestJobQuery {
	query := (&IngestJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(ingestjob.Table, ingestjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.JobsTable, profile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContentBlob, IngestJob, Invoice, JobBatch, Profile []ent.Hook
	}
	inters struct {
		ContentBlob, IngestJob, Invoice, JobBatch, Profile []ent.Interceptor
	}
)

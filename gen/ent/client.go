// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/budgetsnapshot"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/pipelinejob"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BudgetSnapshot is the client for interacting with the BudgetSnapshot builders.
	BudgetSnapshot *BudgetSnapshotClient
	// PipelineJob is the client for interacting with the PipelineJob builders.
	PipelineJob *PipelineJobClient
	// StudyGuide is the client for interacting with the StudyGuide builders.
	StudyGuide *StudyGuideClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BudgetSnapshot = NewBudgetSnapshotClient(c.config)
	c.PipelineJob = NewPipelineJobClient(c.config)
	c.StudyGuide = NewStudyGuideClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		BudgetSnapshot: NewBudgetSnapshotClient(cfg),
		PipelineJob:    NewPipelineJobClient(cfg),
		StudyGuide:     NewStudyGuideClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		BudgetSnapshot: NewBudgetSnapshotClient(cfg),
		PipelineJob:    NewPipelineJobClient(cfg),
		StudyGuide:     NewStudyGuideClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BudgetSnapshot.
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
	c.BudgetSnapshot.Use(hooks...)
	c.PipelineJob.Use(hooks...)
	c.StudyGuide.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BudgetSnapshot.Intercept(interceptors...)
	c.PipelineJob.Intercept(interceptors...)
	c.StudyGuide.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BudgetSnapshotMutation:
		return c.BudgetSnapshot.mutate(ctx, m)
	case *PipelineJobMutation:
		return c.PipelineJob.mutate(ctx, m)
	case *StudyGuideMutation:
		return c.StudyGuide.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BudgetSnapshotClient is a client for the BudgetSnapshot schema.
type BudgetSnapshotClient struct {
	config
}

// NewBudgetSnapshotClient returns a client for the BudgetSnapshot from the given config.
func NewBudgetSnapshotClient(c config) *BudgetSnapshotClient {
	return &BudgetSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `budgetsnapshot.Hooks(f(g(h())))`.
func (c *BudgetSnapshotClient) Use(hooks ...Hook) {
	c.hooks.BudgetSnapshot = append(c.hooks.BudgetSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `budgetsnapshot.Intercept(f(g(h())))`.
func (c *BudgetSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.BudgetSnapshot = append(c.inters.BudgetSnapshot, interceptors...)
}

// Create returns a builder for creating a BudgetSnapshot entity.
func (c *BudgetSnapshotClient) Create() *BudgetSnapshotCreate {
	mutation := newBudgetSnapshotMutation(c.config, OpCreate)
	return &BudgetSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BudgetSnapshot entities.
func (c *BudgetSnapshotClient) CreateBulk(builders ...*BudgetSnapshotCreate) *BudgetSnapshotCreateBulk {
	return &BudgetSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BudgetSnapshotClient) MapCreateBulk(slice any, setFunc func(*BudgetSnapshotCreate, int)) *BudgetSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BudgetSnapshotCreateBulk{err: fmt.Errorf("calling to BudgetSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BudgetSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BudgetSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BudgetSnapshot.
func (c *BudgetSnapshotClient) Update() *BudgetSnapshotUpdate {
	mutation := newBudgetSnapshotMutation(c.config, OpUpdate)
	return &BudgetSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BudgetSnapshotClient) UpdateOne(_m *BudgetSnapshot) *BudgetSnapshotUpdateOne {
	mutation := newBudgetSnapshotMutation(c.config, OpUpdateOne, withBudgetSnapshot(_m))
	return &BudgetSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BudgetSnapshotClient) UpdateOneID(id uuid.UUID) *BudgetSnapshotUpdateOne {
	mutation := newBudgetSnapshotMutation(c.config, OpUpdateOne, withBudgetSnapshotID(id))
	return &BudgetSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BudgetSnapshot.
func (c *BudgetSnapshotClient) Delete() *BudgetSnapshotDelete {
	mutation := newBudgetSnapshotMutation(c.config, OpDelete)
	return &BudgetSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BudgetSnapshotClient) DeleteOne(_m *BudgetSnapshot) *BudgetSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BudgetSnapshotClient) DeleteOneID(id uuid.UUID) *BudgetSnapshotDeleteOne {
	builder := c.Delete().Where(budgetsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BudgetSnapshotDeleteOne{builder}
}

// Query returns a query builder for BudgetSnapshot.
func (c *BudgetSnapshotClient) Query() *BudgetSnapshotQuery {
	return &BudgetSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBudgetSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a BudgetSnapshot entity by its id.
func (c *BudgetSnapshotClient) Get(ctx context.Context, id uuid.UUID) (*BudgetSnapshot, error) {
	return c.Query().Where(budgetsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BudgetSnapshotClient) GetX(ctx context.Context, id uuid.UUID) *BudgetSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BudgetSnapshotClient) Hooks() []Hook {
	return c.hooks.BudgetSnapshot
}

// Interceptors returns the client interceptors.
func (c *BudgetSnapshotClient) Interceptors() []Interceptor {
	return c.inters.BudgetSnapshot
}

func (c *BudgetSnapshotClient) mutate(ctx context.Context, m *BudgetSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BudgetSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BudgetSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BudgetSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BudgetSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BudgetSnapshot mutation op: %q", m.Op())
	}
}

// PipelineJobClient is a client for the PipelineJob schema.
type PipelineJobClient struct {
	config
}

// NewPipelineJobClient returns a client for the PipelineJob from the given config.
func NewPipelineJobClient(c config) *PipelineJobClient {
	return &PipelineJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinejob.Hooks(f(g(h())))`.
func (c *PipelineJobClient) Use(hooks ...Hook) {
	c.hooks.PipelineJob = append(c.hooks.PipelineJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinejob.Intercept(f(g(h())))`.
func (c *PipelineJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineJob = append(c.inters.PipelineJob, interceptors...)
}

// Create returns a builder for creating a PipelineJob entity.
func (c *PipelineJobClient) Create() *PipelineJobCreate {
	mutation := newPipelineJobMutation(c.config, OpCreate)
	return &PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineJob entities.
func (c *PipelineJobClient) CreateBulk(builders ...*PipelineJobCreate) *PipelineJobCreateBulk {
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineJobClient) MapCreateBulk(slice any, setFunc func(*PipelineJobCreate, int)) *PipelineJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineJobCreateBulk{err: fmt.Errorf("calling to PipelineJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineJob.
func (c *PipelineJobClient) Update() *PipelineJobUpdate {
	mutation := newPipelineJobMutation(c.config, OpUpdate)
	return &PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineJobClient) UpdateOne(_m *PipelineJob) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJob(_m))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineJobClient) UpdateOneID(id uuid.UUID) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJobID(id))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineJob.
func (c *PipelineJobClient) Delete() *PipelineJobDelete {
	mutation := newPipelineJobMutation(c.config, OpDelete)
	return &PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineJobClient) DeleteOne(_m *PipelineJob) *PipelineJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineJobClient) DeleteOneID(id uuid.UUID) *PipelineJobDeleteOne {
	builder := c.Delete().Where(pipelinejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineJobDeleteOne{builder}
}

// Query returns a query builder for PipelineJob.
func (c *PipelineJobClient) Query() *PipelineJobQuery {
	return &PipelineJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineJob},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineJob entity by its id.
func (c *PipelineJobClient) Get(ctx context.Context, id uuid.UUID) (*PipelineJob, error) {
	return c.Query().Where(pipelinejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineJobClient) GetX(ctx context.Context, id uuid.UUID) *PipelineJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGuide queries the guide edge of a PipelineJob.
func (c *PipelineJobClient) QueryGuide(_m *PipelineJob) *StudyGuideQuery {
	query := (&StudyGuideClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinejob.Table, pipelinejob.FieldID, id),
			sqlgraph.To(studyguide.Table, studyguide.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, pipelinejob.GuideTable, pipelinejob.GuideColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineJobClient) Hooks() []Hook {
	return c.hooks.PipelineJob
}

// Interceptors returns the client interceptors.
func (c *PipelineJobClient) Interceptors() []Interceptor {
	return c.inters.PipelineJob
}

func (c *PipelineJobClient) mutate(ctx context.Context, m *PipelineJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineJob mutation op: %q", m.Op())
	}
}

// StudyGuideClient is a client for the StudyGuide schema.
type StudyGuideClient struct {
	config
}

// NewStudyGuideClient returns a client for the StudyGuide from the given config.
func NewStudyGuideClient(c config) *StudyGuideClient {
	return &StudyGuideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studyguide.Hooks(f(g(h())))`.
func (c *StudyGuideClient) Use(hooks ...Hook) {
	c.hooks.StudyGuide = append(c.hooks.StudyGuide, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studyguide.Intercept(f(g(h())))`.
func (c *StudyGuideClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyGuide = append(c.inters.StudyGuide, interceptors...)
}

// Create returns a builder for creating a StudyGuide entity.
func (c *StudyGuideClient) Create() *StudyGuideCreate {
	mutation := newStudyGuideMutation(c.config, OpCreate)
	return &StudyGuideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyGuide entities.
func (c *StudyGuideClient) CreateBulk(builders ...*StudyGuideCreate) *StudyGuideCreateBulk {
	return &StudyGuideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyGuideClient) MapCreateBulk(slice any, setFunc func(*StudyGuideCreate, int)) *StudyGuideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyGuideCreateBulk{err: fmt.Errorf("calling to StudyGuideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyGuideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyGuideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyGuide.
func (c *StudyGuideClient) Update() *StudyGuideUpdate {
	mutation := newStudyGuideMutation(c.config, OpUpdate)
	return &StudyGuideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyGuideClient) UpdateOne(_m *StudyGuide) *StudyGuideUpdateOne {
	mutation := newStudyGuideMutation(c.config, OpUpdateOne, withStudyGuide(_m))
	return &StudyGuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyGuideClient) UpdateOneID(id uuid.UUID) *StudyGuideUpdateOne {
	mutation := newStudyGuideMutation(c.config, OpUpdateOne, withStudyGuideID(id))
	return &StudyGuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyGuide.
func (c *StudyGuideClient) Delete() *StudyGuideDelete {
	mutation := newStudyGuideMutation(c.config, OpDelete)
	return &StudyGuideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyGuideClient) DeleteOne(_m *StudyGuide) *StudyGuideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyGuideClient) DeleteOneID(id uuid.UUID) *StudyGuideDeleteOne {
	builder := c.Delete().Where(studyguide.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyGuideDeleteOne{builder}
}

// Query returns a query builder for StudyGuide.
func (c *StudyGuideClient) Query() *StudyGuideQuery {
	return &StudyGuideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyGuide},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyGuide entity by its id.
func (c *StudyGuideClient) Get(ctx context.Context, id uuid.UUID) (*StudyGuide, error) {
	return c.Query().Where(studyguide.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyGuideClient) GetX(ctx context.Context, id uuid.UUID) *StudyGuide {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyGuideClient) Hooks() []Hook {
	return c.hooks.StudyGuide
}

// Interceptors returns the client interceptors.
func (c *StudyGuideClient) Interceptors() []Interceptor {
	return c.inters.StudyGuide
}

func (c *StudyGuideClient) mutate(ctx context.Context, m *StudyGuideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyGuideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyGuideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyGuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyGuideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyGuide mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BudgetSnapshot, PipelineJob, StudyGuide []ent.Hook
	}
	inters struct {
		BudgetSnapshot, PipelineJob, StudyGuide []ent.Interceptor
	}
)

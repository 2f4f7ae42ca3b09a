// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/pawnforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pawnforge/ent/enginerequestevent"
	"github.com/abhisek/pawnforge/ent/game"
	"github.com/abhisek/pawnforge/ent/generationevent"
	"github.com/abhisek/pawnforge/ent/puzzlecache"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EngineRequestEvent is the client for interacting with the EngineRequestEvent builders.
	EngineRequestEvent *EngineRequestEventClient
	// Game is the client for interacting with the Game builders.
	Game *GameClient
	// GenerationEvent is the client for interacting with the GenerationEvent builders.
	GenerationEvent *GenerationEventClient
	// PuzzleCache is the client for interacting with the PuzzleCache builders.
	PuzzleCache *PuzzleCacheClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EngineRequestEvent = NewEngineRequestEventClient(c.config)
	c.Game = NewGameClient(c.config)
	c.GenerationEvent = NewGenerationEventClient(c.config)
	c.PuzzleCache = NewPuzzleCacheClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		EngineRequestEvent: NewEngineRequestEventClient(cfg),
		Game:               NewGameClient(cfg),
		GenerationEvent:    NewGenerationEventClient(cfg),
		PuzzleCache:        NewPuzzleCacheClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		EngineRequestEvent: NewEngineRequestEventClient(cfg),
		Game:               NewGameClient(cfg),
		GenerationEvent:    NewGenerationEventClient(cfg),
		PuzzleCache:        NewPuzzleCacheClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EngineRequestEvent.
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
	c.EngineRequestEvent.Use(hooks...)
	c.Game.Use(hooks...)
	c.GenerationEvent.Use(hooks...)
	c.PuzzleCache.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EngineRequestEvent.Intercept(interceptors...)
	c.Game.Intercept(interceptors...)
	c.GenerationEvent.Intercept(interceptors...)
	c.PuzzleCache.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EngineRequestEventMutation:
		return c.EngineRequestEvent.mutate(ctx, m)
	case *GameMutation:
		return c.Game.mutate(ctx, m)
	case *GenerationEventMutation:
		return c.GenerationEvent.mutate(ctx, m)
	case *PuzzleCacheMutation:
		return c.PuzzleCache.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EngineRequestEventClient is a client for the EngineRequestEvent schema.
type EngineRequestEventClient struct {
	config
}

// NewEngineRequestEventClient returns a client for the EngineRequestEvent from the given config.
func NewEngineRequestEventClient(c config) *EngineRequestEventClient {
	return &EngineRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `enginerequestevent.Hooks(f(g(h())))`.
func (c *EngineRequestEventClient) Use(hooks ...Hook) {
	c.hooks.EngineRequestEvent = append(c.hooks.EngineRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `enginerequestevent.Intercept(f(g(h())))`.
func (c *EngineRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EngineRequestEvent = append(c.inters.EngineRequestEvent, interceptors...)
}

// Create returns a builder for creating a EngineRequestEvent entity.
func (c *EngineRequestEventClient) Create() *EngineRequestEventCreate {
	mutation := newEngineRequestEventMutation(c.config, OpCreate)
	return &EngineRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EngineRequestEvent entities.
func (c *EngineRequestEventClient) CreateBulk(builders ...*EngineRequestEventCreate) *EngineRequestEventCreateBulk {
	return &EngineRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EngineRequestEventClient) MapCreateBulk(slice any, setFunc func(*EngineRequestEventCreate, int)) *EngineRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EngineRequestEventCreateBulk{err: fmt.Errorf("calling to EngineRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EngineRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EngineRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EngineRequestEvent.
func (c *EngineRequestEventClient) Update() *EngineRequestEventUpdate {
	mutation := newEngineRequestEventMutation(c.config, OpUpdate)
	return &EngineRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EngineRequestEventClient) UpdateOne(_m *EngineRequestEvent) *EngineRequestEventUpdateOne {
	mutation := newEngineRequestEventMutation(c.config, OpUpdateOne, withEngineRequestEvent(_m))
	return &EngineRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EngineRequestEventClient) UpdateOneID(id int) *EngineRequestEventUpdateOne {
	mutation := newEngineRequestEventMutation(c.config, OpUpdateOne, withEngineRequestEventID(id))
	return &EngineRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EngineRequestEvent.
func (c *EngineRequestEventClient) Delete() *EngineRequestEventDelete {
	mutation := newEngineRequestEventMutation(c.config, OpDelete)
	return &EngineRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EngineRequestEventClient) DeleteOne(_m *EngineRequestEvent) *EngineRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EngineRequestEventClient) DeleteOneID(id int) *EngineRequestEventDeleteOne {
	builder := c.Delete().Where(enginerequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EngineRequestEventDeleteOne{builder}
}

// Query returns a query builder for EngineRequestEvent.
func (c *EngineRequestEventClient) Query() *EngineRequestEventQuery {
	return &EngineRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEngineRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EngineRequestEvent entity by its id.
func (c *EngineRequestEventClient) Get(ctx context.Context, id int) (*EngineRequestEvent, error) {
	return c.Query().Where(enginerequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EngineRequestEventClient) GetX(ctx context.Context, id int) *EngineRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EngineRequestEventClient) Hooks() []Hook {
	return c.hooks.EngineRequestEvent
}

// Interceptors returns the client interceptors.
func (c *EngineRequestEventClient) Interceptors() []Interceptor {
	return c.inters.EngineRequestEvent
}

func (c *EngineRequestEventClient) mutate(ctx context.Context, m *EngineRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EngineRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EngineRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EngineRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EngineRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EngineRequestEvent mutation op: %q", m.Op())
	}
}

// GameClient is a client for the Game schema.
type GameClient struct {
	config
}

// NewGameClient returns a client for the Game from the given config.
func NewGameClient(c config) *GameClient {
	return &GameClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `game.Hooks(f(g(h())))`.
func (c *GameClient) Use(hooks ...Hook) {
	c.hooks.Game = append(c.hooks.Game, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `game.Intercept(f(g(h())))`.
func (c *GameClient) Intercept(interceptors ...Interceptor) {
	c.inters.Game = append(c.inters.Game, interceptors...)
}

// Create returns a builder for creating a Game entity.
func (c *GameClient) Create() *GameCreate {
	mutation := newGameMutation(c.config, OpCreate)
	return &GameCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Game entities.
func (c *GameClient) CreateBulk(builders ...*GameCreate) *GameCreateBulk {
	return &GameCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GameClient) MapCreateBulk(slice any, setFunc func(*GameCreate, int)) *GameCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GameCreateBulk{err: fmt.Errorf("calling to GameClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GameCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GameCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Game.
func (c *GameClient) Update() *GameUpdate {
	mutation := newGameMutation(c.config, OpUpdate)
	return &GameUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GameClient) UpdateOne(_m *Game) *GameUpdateOne {
	mutation := newGameMutation(c.config, OpUpdateOne, withGame(_m))
	return &GameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GameClient) UpdateOneID(id int) *GameUpdateOne {
	mutation := newGameMutation(c.config, OpUpdateOne, withGameID(id))
	return &GameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Game.
func (c *GameClient) Delete() *GameDelete {
	mutation := newGameMutation(c.config, OpDelete)
	return &GameDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GameClient) DeleteOne(_m *Game) *GameDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GameClient) DeleteOneID(id int) *GameDeleteOne {
	builder := c.Delete().Where(game.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GameDeleteOne{builder}
}

// Query returns a query builder for Game.
func (c *GameClient) Query() *GameQuery {
	return &GameQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGame},
		inters: c.Interceptors(),
	}
}

// Get returns a Game entity by its id.
func (c *GameClient) Get(ctx context.Context, id int) (*Game, error) {
	return c.Query().Where(game.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GameClient) GetX(ctx context.Context, id int) *Game {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GameClient) Hooks() []Hook {
	return c.hooks.Game
}

// Interceptors returns the client interceptors.
func (c *GameClient) Interceptors() []Interceptor {
	return c.inters.Game
}

func (c *GameClient) mutate(ctx context.Context, m *GameMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GameCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GameUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GameDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Game mutation op: %q", m.Op())
	}
}

// GenerationEventClient is a client for the GenerationEvent schema.
type GenerationEventClient struct {
	config
}

// NewGenerationEventClient returns a client for the GenerationEvent from the given config.
func NewGenerationEventClient(c config) *GenerationEventClient {
	return &GenerationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationevent.Hooks(f(g(h())))`.
func (c *GenerationEventClient) Use(hooks ...Hook) {
	c.hooks.GenerationEvent = append(c.hooks.GenerationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationevent.Intercept(f(g(h())))`.
func (c *GenerationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationEvent = append(c.inters.GenerationEvent, interceptors...)
}

// Create returns a builder for creating a GenerationEvent entity.
func (c *GenerationEventClient) Create() *GenerationEventCreate {
	mutation := newGenerationEventMutation(c.config, OpCreate)
	return &GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationEvent entities.
func (c *GenerationEventClient) CreateBulk(builders ...*GenerationEventCreate) *GenerationEventCreateBulk {
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationEventClient) MapCreateBulk(slice any, setFunc func(*GenerationEventCreate, int)) *GenerationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationEventCreateBulk{err: fmt.Errorf("calling to GenerationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationEvent.
func (c *GenerationEventClient) Update() *GenerationEventUpdate {
	mutation := newGenerationEventMutation(c.config, OpUpdate)
	return &GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationEventClient) UpdateOne(_m *GenerationEvent) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEvent(_m))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationEventClient) UpdateOneID(id int) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEventID(id))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationEvent.
func (c *GenerationEventClient) Delete() *GenerationEventDelete {
	mutation := newGenerationEventMutation(c.config, OpDelete)
	return &GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationEventClient) DeleteOne(_m *GenerationEvent) *GenerationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationEventClient) DeleteOneID(id int) *GenerationEventDeleteOne {
	builder := c.Delete().Where(generationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationEventDeleteOne{builder}
}

// Query returns a query builder for GenerationEvent.
func (c *GenerationEventClient) Query() *GenerationEventQuery {
	return &GenerationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationEvent entity by its id.
func (c *GenerationEventClient) Get(ctx context.Context, id int) (*GenerationEvent, error) {
	return c.Query().Where(generationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationEventClient) GetX(ctx context.Context, id int) *GenerationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationEventClient) Hooks() []Hook {
	return c.hooks.GenerationEvent
}

// Interceptors returns the client interceptors.
func (c *GenerationEventClient) Interceptors() []Interceptor {
	return c.inters.GenerationEvent
}

func (c *GenerationEventClient) mutate(ctx context.Context, m *GenerationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationEvent mutation op: %q", m.Op())
	}
}

// PuzzleCacheClient is a client for the PuzzleCache schema.
type PuzzleCacheClient struct {
	config
}

// NewPuzzleCacheClient returns a client for the PuzzleCache from the given config.
func NewPuzzleCacheClient(c config) *PuzzleCacheClient {
	return &PuzzleCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `puzzlecache.Hooks(f(g(h())))`.
func (c *PuzzleCacheClient) Use(hooks ...Hook) {
	c.hooks.PuzzleCache = append(c.hooks.PuzzleCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `puzzlecache.Intercept(f(g(h())))`.
func (c *PuzzleCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.PuzzleCache = append(c.inters.PuzzleCache, interceptors...)
}

// Create returns a builder for creating a PuzzleCache entity.
func (c *PuzzleCacheClient) Create() *PuzzleCacheCreate {
	mutation := newPuzzleCacheMutation(c.config, OpCreate)
	return &PuzzleCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PuzzleCache entities.
func (c *PuzzleCacheClient) CreateBulk(builders ...*PuzzleCacheCreate) *PuzzleCacheCreateBulk {
	return &PuzzleCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PuzzleCacheClient) MapCreateBulk(slice any, setFunc func(*PuzzleCacheCreate, int)) *PuzzleCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PuzzleCacheCreateBulk{err: fmt.Errorf("calling to PuzzleCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PuzzleCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PuzzleCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PuzzleCache.
func (c *PuzzleCacheClient) Update() *PuzzleCacheUpdate {
	mutation := newPuzzleCacheMutation(c.config, OpUpdate)
	return &PuzzleCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PuzzleCacheClient) UpdateOne(_m *PuzzleCache) *PuzzleCacheUpdateOne {
	mutation := newPuzzleCacheMutation(c.config, OpUpdateOne, withPuzzleCache(_m))
	return &PuzzleCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PuzzleCacheClient) UpdateOneID(id int) *PuzzleCacheUpdateOne {
	mutation := newPuzzleCacheMutation(c.config, OpUpdateOne, withPuzzleCacheID(id))
	return &PuzzleCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PuzzleCache.
func (c *PuzzleCacheClient) Delete() *PuzzleCacheDelete {
	mutation := newPuzzleCacheMutation(c.config, OpDelete)
	return &PuzzleCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PuzzleCacheClient) DeleteOne(_m *PuzzleCache) *PuzzleCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PuzzleCacheClient) DeleteOneID(id int) *PuzzleCacheDeleteOne {
	builder := c.Delete().Where(puzzlecache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PuzzleCacheDeleteOne{builder}
}

// Query returns a query builder for PuzzleCache.
func (c *PuzzleCacheClient) Query() *PuzzleCacheQuery {
	return &PuzzleCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePuzzleCache},
		inters: c.Interceptors(),
	}
}

// Get returns a PuzzleCache entity by its id.
func (c *PuzzleCacheClient) Get(ctx context.Context, id int) (*PuzzleCache, error) {
	return c.Query().Where(puzzlecache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PuzzleCacheClient) GetX(ctx context.Context, id int) *PuzzleCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PuzzleCacheClient) Hooks() []Hook {
	return c.hooks.PuzzleCache
}

// Interceptors returns the client interceptors.
func (c *PuzzleCacheClient) Interceptors() []Interceptor {
	return c.inters.PuzzleCache
}

func (c *PuzzleCacheClient) mutate(ctx context.Context, m *PuzzleCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PuzzleCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PuzzleCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PuzzleCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PuzzleCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PuzzleCache mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EngineRequestEvent, Game, GenerationEvent, PuzzleCache []ent.Hook
	}
	inters struct {
		EngineRequestEvent, Game, GenerationEvent, PuzzleCache []ent.Interceptor
	}
)

package loom

// ModuleOption represents a registration action within a module.
type ModuleOption func(*Container) error

// NewModule groups related registrations under a name. Modules nest, so an
// application module can be composed from feature modules:
//
//	var StorageModule = loom.NewModule("storage",
//	    loom.AddSingleton("db", NewDatabaseFactory),
//	    loom.AddScoped("tx", NewTransactionFactory),
//	)
//
//	var AppModule = loom.NewModule("app",
//	    StorageModule,
//	    loom.AddTransient("mailer", NewMailerFactory),
//	)
//
// Errors from a module's registrations are wrapped in ModuleError with the
// module's name.
func NewModule(name string, opts ...ModuleOption) ModuleOption {
	return func(c *Container) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}

			if err := opt(c); err != nil {
				return ModuleError{Module: name, Cause: err}
			}
		}

		return nil
	}
}

// AddSingleton creates a ModuleOption registering a singleton binding.
func AddSingleton(id Identifier, factory Factory, opts ...BindOption) ModuleOption {
	return func(c *Container) error {
		return c.RegisterSingleton(id, factory, opts...)
	}
}

// AddScoped creates a ModuleOption registering a scoped binding.
func AddScoped(id Identifier, factory Factory, opts ...BindOption) ModuleOption {
	return func(c *Container) error {
		return c.RegisterScoped(id, factory, opts...)
	}
}

// AddTransient creates a ModuleOption registering a transient binding.
func AddTransient(id Identifier, factory Factory, opts ...BindOption) ModuleOption {
	return func(c *Container) error {
		return c.RegisterTransient(id, factory, opts...)
	}
}

// AddInstance creates a ModuleOption binding an already-constructed value.
func AddInstance(id Identifier, value any) ModuleOption {
	return func(c *Container) error {
		return c.RegisterInstance(id, value)
	}
}

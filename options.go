package refpool

// ManagerOption configures a [Manager] at construction time.
type ManagerOption[O Object] func(*managerOptions[O])

// CacherOption configures a [Cacher] at construction time.
type CacherOption[O Object] func(*cacherOptions[O])

type managerOptions[O Object] struct {
	logger    Logger
	allocator Allocator[O]
}

type cacherOptions[O Object] struct {
	managerOptions[O]
}

func defaultManagerOptions[O Object]() managerOptions[O] {
	return managerOptions[O]{allocator: DefaultAllocator[O]{}}
}

func defaultCacherOptions[O Object]() cacherOptions[O] {
	return cacherOptions[O]{managerOptions: defaultManagerOptions[O]()}
}

// WithLogger configures diagnostic logging (Debug events when an asset is
// materialized or, in a Keeper, forgotten; eviction-pressure warnings; see
// SPEC_FULL.md §D3). Materialization failures are returned to the caller,
// not logged. The default is silent.
func WithLogger[O Object](l Logger) ManagerOption[O] {
	return func(o *managerOptions[O]) { o.logger = l }
}

// WithAllocator overrides how Objects are constructed from a Recipe. The
// default is [DefaultAllocator], which just calls Recipe.Build.
func WithAllocator[O Object](a Allocator[O]) ManagerOption[O] {
	return func(o *managerOptions[O]) { o.allocator = a }
}

// WithCacherLogger is [WithLogger] for [Cacher].
func WithCacherLogger[O Object](l Logger) CacherOption[O] {
	return func(o *cacherOptions[O]) { o.logger = l }
}

// WithCacherAllocator is [WithAllocator] for [Cacher].
func WithCacherAllocator[O Object](a Allocator[O]) CacherOption[O] {
	return func(o *cacherOptions[O]) { o.allocator = a }
}

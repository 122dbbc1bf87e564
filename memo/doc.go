// Package memo caches method results per instance.
//
// A cached method remembers the result of its first successful call on an
// instance and returns it for every later call on that instance, whatever
// the arguments. Results live in a [Cache] owned by the instance, keyed by
// the identity of the cached method, so two instances never share results
// and two cached methods on one instance never collide.
//
// The instance provides the cache, either as an exported *memo.Cache field
// whose name is passed to [Method] (default "Cache"), or by implementing
// [Holder]. This package never creates the instance's cache:
//
//	type Repo struct {
//	    Cache *memo.Cache
//	    db    *sql.DB
//	}
//
//	var countUsers = memo.Method[*Repo, struct{}, int]("")(
//	    func(r *Repo, ctx context.Context, _ struct{}) (int, error) {
//	        return queryCount(ctx, r.db)
//	    })
//
//	repo := &Repo{Cache: memo.NewCache(), db: db}
//	n, err := countUsers(repo, ctx, struct{}{})
//
// Errors are not cached. Concurrent first calls on the same instance are
// collapsed so the method body runs once.
package memo

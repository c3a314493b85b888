package generator

// Static tables consumed by pool construction and message synthesis. All of
// them are process-wide read-only state: initialized here, never mutated.

var namingSuffixes = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
	"eta", "theta", "iota", "kappa", "lambda", "mu",
	"nu", "xi", "omicron", "pi", "rho", "sigma",
	"tau", "upsilon", "phi", "chi", "psi", "omega",
	"prime", "secondary", "tertiary", "main", "backup", "standby",
	"primary", "replica", "master", "worker", "node", "edge",
}

// messageTemplates holds the per-level template sets. Placeholders are
// substituted with values derived from the row index, never from a global
// random source.
var messageTemplates = map[string][]string{
	"INFO": {
		"Request completed successfully for user {USER} from {IP} in {TIME}ms with status {STATUS}",
		"Processed {COUNT} records from table {TABLE} for request {ID} in {TIME}ms",
		"User {USER} logged in from {IP}, session established in {TIME}ms",
		"Scheduled job finished on {SERVICE}: {COUNT} items handled, payload {SIZE}",
		"Cache refresh for {TABLE} completed, {COUNT} entries loaded in {TIME}ms",
		"Health check passed for {SERVICE}, response {STATUS} in {TIME}ms",
		"Upload accepted from {IP}: object {ID}, size {SIZE}, stored to {TABLE}",
		"Configuration reloaded on {SERVICE}, {COUNT} keys applied",
	},
	"DEBUG": {
		"Query plan for {TABLE}: full scan avoided, {COUNT} index entries touched in {TIME}ms",
		"Connection pool state on {SERVICE}: {COUNT} active, request {ID} waited {TIME}ms",
		"Deserialized payload {SIZE} for request {ID} from {IP}",
		"Retrying fetch for user {USER}: attempt {COUNT}, backoff {TIME}ms",
		"Buffer flush on {SERVICE}: {SIZE} written, {COUNT} rows, status {STATUS}",
		"Session lookup for {USER} hit cache, resolved in {TIME}ms",
	},
	"WARN": {
		"Slow query on {TABLE}: {TIME}ms exceeds threshold, request {ID} from {IP}",
		"Response time degraded on {SERVICE}: {TIME}ms for user {USER}",
		"Retry budget nearly exhausted for request {ID}: {COUNT} attempts so far",
		"Payload {SIZE} from {IP} close to limit, table {TABLE}",
		"Connection churn on {SERVICE}: {COUNT} reconnects, last status {STATUS}",
		"Session for user {USER} is stale, refreshing after {TIME}ms",
	},
	"ERROR": {
		"Request {ID} failed with status {STATUS} for user {USER} from {IP} after {TIME}ms",
		"Write to table {TABLE} aborted: {COUNT} rows rolled back, payload {SIZE}",
		"Upstream call from {SERVICE} timed out after {TIME}ms, request {ID}",
		"Authentication failed for user {USER} from {IP}, status {STATUS}",
		"Out of retries for request {ID} on {SERVICE}: {COUNT} attempts, giving up",
		"Transaction on {TABLE} deadlocked after {TIME}ms, rolling back {COUNT} statements",
	},
}

// tableNames feeds the {TABLE} placeholder.
var tableNames = []string{
	"orders", "users", "sessions", "events", "payments",
	"inventory", "audit_log", "metrics", "shipments", "accounts",
}

// statusCodes feeds the {STATUS} placeholder.
var statusCodes = []string{
	"200", "201", "204", "400", "401", "403", "404", "409", "429", "500", "502", "503",
}

// stackClasses and stackMethods feed the synthetic stack-trace lines appended
// to ERROR messages.
var stackClasses = []string{
	"RequestHandler", "ConnectionPool", "QueryExecutor", "SessionManager",
	"BatchWriter", "RetryPolicy", "AuthFilter", "StreamCodec",
	"TableRouter", "WalAppender", "FlushScheduler", "ShardBalancer",
}

var stackMethods = []string{
	"handle", "execute", "acquire", "flush", "dispatch", "validate",
	"encode", "commit", "route", "append", "rebalance", "await",
}

// fillerWords feeds the key=value detail segments used to pad messages up to
// the target length.
var fillerWords = []string{
	"shard", "replica", "segment", "offset", "epoch", "region",
	"partition", "cursor", "watermark", "lease", "quorum", "term",
	"index", "bucket", "slot", "window", "batch", "stream",
	"queue", "buffer", "latency", "backlog", "inflight", "retries",
}

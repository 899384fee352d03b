package schemas

// Result is the outcome of validating one schema: either OK, or a map of
// dotted field path -> human-readable message, one entry per failing
// constraint.
type Result struct {
	OK     bool              `json:"ok"`
	Errors map[string]string `json:"errors,omitempty"`
}

func ok() Result {
	return Result{OK: true}
}

func failed(errs map[string]string) Result {
	if len(errs) == 0 {
		return ok()
	}
	return Result{OK: false, Errors: errs}
}

// merge folds b's errors into a, prefixing nothing; both maps key by dotted
// field path already.
func merge(a, b map[string]string) map[string]string {
	if len(b) == 0 {
		return a
	}
	if a == nil {
		a = make(map[string]string, len(b))
	}
	for k, v := range b {
		if _, exists := a[k]; !exists {
			a[k] = v
		}
	}
	return a
}

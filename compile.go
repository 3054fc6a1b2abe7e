package localize

import "encoding/json"

// CallArg is one argument of a translation call as seen by the host's
// parser hook.
type CallArg struct {
	// Literal marks arguments that are plain string literals. Anything else
	// (computed values, identifiers, spreads) cannot be resolved at compile
	// time.
	Literal bool
	// Value is the literal's decoded value when Literal is set.
	Value string
}

// Call describes one translation-function call site yielded by the host
// during module compilation.
type Call struct {
	// Function is the name the call site used, already matched against the
	// configured function names by the host (see Config.IsTranslationFunction).
	Function string
	Args     []CallArg
	// Source locates the call for diagnostics, e.g. "src/app.js:14".
	Source string
}

// CallReplacer produces the constant-replacement instruction for each
// translation call site: the final quoted literal for single-locale builds,
// or the quoted placeholder literal when several locales are configured.
type CallReplacer struct {
	cfg       *Config
	validator *Validator
	diags     *Diagnostics
}

func NewCallReplacer(cfg *Config) *CallReplacer {
	return &CallReplacer{
		cfg:       cfg,
		validator: cfg.Validator(),
		diags:     cfg.Diagnostics(),
	}
}

// Replace returns the replacement literal for a call site and ok=true when
// the call should be transformed. Unsupported call shapes record a warning
// and return ok=false so the host leaves the call untouched. The only error
// is a *MissingKeyError under the fail-on-missing policy, which must halt
// the surrounding build.
func (r *CallReplacer) Replace(call Call) (string, bool, error) {
	if r == nil {
		return "", false, nil
	}

	if len(call.Args) != 1 || !call.Args[0].Literal {
		r.diags.Warn(Warning{
			Kind:    WarnConfusingUsage,
			Source:  call.Source,
			Message: "translation call requires exactly one string literal argument",
		})
		return "", false, nil
	}

	key := call.Args[0].Value
	if key == "" {
		// An empty key has no catalog entry and no decodable placeholder
		// form; leave the call untouched like any other unresolvable shape.
		r.diags.Warn(Warning{
			Kind:    WarnConfusingUsage,
			Source:  call.Source,
			Message: "translation call requires a non-empty string key",
		})
		return "", false, nil
	}
	if _, err := r.validator.Validate(key); err != nil {
		return "", false, err
	}

	if !r.cfg.MultiLocale() {
		// Single-locale fast path: substitute the final value immediately so
		// the later scan/rewrite pass never runs. A missing key falls back
		// to the bare key, consistent with the validator's warning.
		locale := r.cfg.Locales[0]
		value, ok := r.cfg.Catalogs.Lookup(locale, key)
		if !ok {
			value = key
		}
		return jsonString(value), true, nil
	}

	return jsonString(EncodeKey(key)), true, nil
}

// jsonString renders a value as a quoted JSON string literal.
func jsonString(value string) string {
	data, _ := json.Marshal(value)
	return string(data)
}

// jsonEscape renders a value as JSON string content, without the quotes,
// for splicing into an existing string literal.
func jsonEscape(value string) string {
	quoted := jsonString(value)
	return quoted[1 : len(quoted)-1]
}

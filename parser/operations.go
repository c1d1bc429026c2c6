package parser

// HTTP method names as they appear as path item keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// MethodOperation pairs an HTTP method with its operation on a path item.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operations returns the operations defined on the path item, in the order
// get, put, post, delete, options, head, patch, trace. Undefined methods are skipped.
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}
	all := []MethodOperation{
		{MethodGet, p.Get},
		{MethodPut, p.Put},
		{MethodPost, p.Post},
		{MethodDelete, p.Delete},
		{MethodOptions, p.Options},
		{MethodHead, p.Head},
		{MethodPatch, p.Patch},
		{MethodTrace, p.Trace},
	}
	ops := all[:0]
	for _, mo := range all {
		if mo.Operation != nil {
			ops = append(ops, mo)
		}
	}
	return ops
}

// SetOperation assigns op to the slot for method. Unknown methods are ignored
// and reported as false.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	switch method {
	case MethodGet:
		p.Get = op
	case MethodPut:
		p.Put = op
	case MethodPost:
		p.Post = op
	case MethodDelete:
		p.Delete = op
	case MethodOptions:
		p.Options = op
	case MethodHead:
		p.Head = op
	case MethodPatch:
		p.Patch = op
	case MethodTrace:
		p.Trace = op
	default:
		return false
	}
	return true
}

// Package browser drives a headless Chrome tab as a loader host: symbol
// probes and element injection run as page JavaScript through go-rod.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/wpsmith/iinject/internal/element"
	"github.com/wpsmith/iinject/internal/process"
)

// Sentinel errors for browser operations.
var (
	ErrConnect    = errors.New("failed to connect to browser")
	ErrPageCreate = errors.New("failed to create browser page")
	ErrPageLoad   = errors.New("failed to load page")
	ErrEval       = errors.New("page script failed")
	ErrLoad       = errors.New("element failed to load")
)

// DefaultTimeout bounds page loads and individual probes.
const DefaultTimeout = 30 * time.Second

// Options configures Launch. Zero values fall back to the environment.
type Options struct {
	Bin       string        // Chrome binary (default: $ROD_BROWSER_BIN, else managed download)
	NoSandbox bool          // also enabled by CI=true, ROD_NO_SANDBOX=1, or a custom binary
	Timeout   time.Duration // default: DefaultTimeout
}

// Browser owns one Chrome process.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// Launch starts Chrome and connects to it.
// Rod downloads a managed Chromium on first run if no binary is configured.
func Launch(opts Options) (*Browser, error) {
	l := launcher.New()

	bin := opts.Bin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}
	if bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if opts.NoSandbox || bin != "" || os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		killLauncher(l)
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Browser{browser: b, launcher: l, timeout: timeout}, nil
}

// Close releases browser resources. Chrome helper processes are killed
// with the browser's process group so none outlive the CLI.
func (b *Browser) Close() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		killLauncher(b.launcher)
		b.launcher = nil
	}
	return err
}

// killLauncher stops the Chrome process tree started by l.
func killLauncher(l *launcher.Launcher) {
	if pid := l.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	l.Kill()
}

// Open navigates a new tab to url and waits for it to load.
func (b *Browser) Open(ctx context.Context, url string) (*Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	timeout := b.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			_ = page.Close()
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	return &Tab{page: page, timeout: b.timeout}, nil
}

// Tab is one open page. Probes and appends are serialized by rod's CDP
// session; completion callbacks run on their own goroutines.
type Tab struct {
	page    *rod.Page
	timeout time.Duration
	seq     atomic.Int64
}

// Close closes the tab.
func (t *Tab) Close() error {
	return t.page.Close()
}

const definedJS = `(name) => typeof window[name] !== 'undefined'`

// hasMemberJS looks the member up on the value the object yields when
// called, so ("jQuery", "SPServices") reads $().SPServices.
const hasMemberJS = `(obj, member) => {
	try {
		const o = window[obj];
		const v = typeof o === 'function' ? o() : o;
		return v != null && !!v[member];
	} catch (e) {
		return false;
	}
}`

// Defined reports whether symbol is defined on window. Probe failures
// count as undefined.
func (t *Tab) Defined(symbol string) bool {
	return t.evalBool(definedJS, symbol)
}

// HasMember reports whether object's call result carries member.
func (t *Tab) HasMember(object, member string) bool {
	return t.evalBool(hasMemberJS, object, member)
}

func (t *Tab) evalBool(js string, args ...any) bool {
	res, err := t.page.Timeout(t.timeout).Evaluate(rod.Eval(js, args...).ByPromise())
	if err != nil {
		return false
	}
	return res.Value.Bool()
}

// appendJS creates the element, registers a completion promise under id
// when someone listens for it, and appends it. Inline bodies run
// synchronously on append, so their promise is already settled.
const appendJS = `(tag, attrs, text, head, id, track) => {
	const el = document.createElement(tag);
	for (const [k, v] of attrs) el.setAttribute(k, v);
	if (text) el.text = text;
	const parent = head ? document.getElementsByTagName('head')[0] : document.body;
	if (!parent) throw new Error('document has no ' + (head ? 'head' : 'body') + ' element');
	if (track) {
		window.__iinject = window.__iinject || {};
		window.__iinject[id] = text ? Promise.resolve(true) : new Promise((resolve, reject) => {
			el.addEventListener('load', () => resolve(true));
			el.addEventListener('error', () => reject(new Error('failed to load ' + (el.src || el.href))));
		});
	}
	parent.appendChild(el);
	return true;
}`

const awaitJS = `(id) => {
	const p = window.__iinject[id];
	delete window.__iinject[id];
	return p;
}`

// Append inserts el into the page. Insertion is synchronous; when el has
// callbacks, a goroutine awaits the load event and fires OnLoad or OnError.
// The wait is bounded by the browser timeout; expiry reports ErrLoad.
func (t *Tab) Append(ctx context.Context, el *element.Element, target element.Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	attrs := make([][2]string, 0, len(el.Attrs))
	for _, a := range el.Attrs {
		attrs = append(attrs, [2]string{a.Key, a.Val})
	}
	id := "el" + strconv.FormatInt(t.seq.Add(1), 10)

	page := t.page.Context(ctx)
	if _, err := page.Evaluate(rod.Eval(appendJS, el.Tag, attrs, el.Text, target == element.Head, id, el.Tracked()).ByPromise()); err != nil {
		return fmt.Errorf("%w: %v", ErrEval, err)
	}

	if !el.Tracked() {
		return nil
	}

	go func() {
		wait := page.Timeout(t.timeout)
		defer wait.CancelTimeout()
		if _, err := wait.Evaluate(rod.Eval(awaitJS, id).ByPromise()); err != nil {
			el.Failed(fmt.Errorf("%w: %v", ErrLoad, err))
			return
		}
		el.Loaded()
	}()
	return nil
}

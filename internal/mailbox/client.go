package mailbox

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/billfold/invoice-ingest/internal/common"
)

// Client is a deliberately thin transport over the mail protocol: it
// speaks just enough of the wire format to connect, search and fetch,
// and hands body-structure text to callers verbatim. It is NOT a
// full IMAP client.
type Client struct {
	conn   net.Conn
	r      *bufio.Reader
	logger *slog.Logger
	tagSeq int
	folder string
}

func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{logger: logger}
}

func (c *Client) Connect(ctx context.Context, cfg Config) error {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", cfg.Addr, nil)
	if err != nil {
		return common.Transient("mailbox dial", err)
	}
	c.conn = conn
	c.r = bufio.NewReader(conn)

	if _, err := c.readLine(ctx); err != nil { // server greeting
		return common.Transient("mailbox greeting", err)
	}
	if _, err := c.command(ctx, fmt.Sprintf("LOGIN %s %s", quote(cfg.Username), quote(cfg.Password))); err != nil {
		return common.WrapError(err, "mailbox login")
	}
	c.logger.Info("mailbox.connected", "addr", cfg.Addr, "user", cfg.Username)
	return nil
}

func (c *Client) selectFolder(ctx context.Context, folder string) error {
	if folder == c.folder {
		return nil
	}
	if _, err := c.command(ctx, "SELECT "+quote(folder)); err != nil {
		return common.WrapError(err, "select folder")
	}
	c.folder = folder
	return nil
}

// Search returns matching uids in ascending order.
func (c *Client) Search(ctx context.Context, criteria SearchCriteria) ([]uint32, error) {
	folder := criteria.Folder
	if folder == "" {
		folder = "INBOX"
	}
	if err := c.selectFolder(ctx, folder); err != nil {
		return nil, err
	}

	terms := []string{"ALL"}
	if !criteria.Since.IsZero() {
		terms = append(terms, "SINCE", criteria.Since.Format("02-Jan-2006"))
	}
	if !criteria.Before.IsZero() {
		terms = append(terms, "BEFORE", criteria.Before.Format("02-Jan-2006"))
	}
	if criteria.Subject != "" {
		terms = append(terms, "SUBJECT", quote(criteria.Subject))
	}
	if criteria.AfterUID > 0 {
		terms = append(terms, fmt.Sprintf("UID %d:*", criteria.AfterUID+1))
	}

	lines, err := c.command(ctx, "UID SEARCH CHARSET UTF-8 "+strings.Join(terms, " "))
	if err != nil {
		return nil, common.Transient("mailbox search", err)
	}

	var uids []uint32
	for _, line := range lines {
		rest, ok := strings.CutPrefix(line, "* SEARCH")
		if !ok {
			continue
		}
		for _, f := range strings.Fields(rest) {
			if n, err := strconv.ParseUint(f, 10, 32); err == nil {
				u := uint32(n)
				// servers answer "n:*" searches with the highest uid even
				// when it is below the requested range
				if criteria.AfterUID > 0 && u <= criteria.AfterUID {
					continue
				}
				uids = append(uids, u)
			}
		}
	}
	return uids, nil
}

// Fetch returns one record per uid with the raw, uninterpreted
// body-structure text. Records for uids the server omits are skipped.
func (c *Client) Fetch(ctx context.Context, uids []uint32) ([]FetchRecord, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	set := make([]string, len(uids))
	for i, u := range uids {
		set[i] = strconv.FormatUint(uint64(u), 10)
	}
	lines, err := c.command(ctx, fmt.Sprintf("UID FETCH %s (UID BODYSTRUCTURE)", strings.Join(set, ",")))
	if err != nil {
		return nil, common.Transient("mailbox fetch", err)
	}

	var out []FetchRecord
	for _, line := range lines {
		if !strings.Contains(line, "FETCH") {
			continue
		}
		rec := FetchRecord{UID: extractUID(line)}
		if i := strings.Index(line, "BODYSTRUCTURE "); i >= 0 {
			rec.BodyStructure = balancedSpan(line[i+len("BODYSTRUCTURE "):])
		}
		if rec.UID != 0 {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FetchAttachment fetches and decodes one candidate's bytes. Candidates
// with a section path fetch just that part; recovered candidates fetch
// the whole message and locate the part by filename.
func (c *Client) FetchAttachment(ctx context.Context, cand AttachmentCandidate) ([]byte, error) {
	section := cand.Section
	if section == "" {
		raw, err := c.fetchLiteral(ctx, cand.SourceUID, "BODY.PEEK[]")
		if err != nil {
			return nil, err
		}
		data, err := partBytesByFilename(raw, cand.Filename)
		if err != nil {
			return nil, common.Permanent("locate recovered part", err)
		}
		return data, nil
	}
	raw, err := c.fetchLiteral(ctx, cand.SourceUID, fmt.Sprintf("BODY.PEEK[%s]", section))
	if err != nil {
		return nil, err
	}
	return decodeTransfer(cand.Encoding, raw)
}

func (c *Client) fetchLiteral(ctx context.Context, uid uint32, item string) ([]byte, error) {
	tag := c.nextTag()
	cmd := fmt.Sprintf("%s UID FETCH %d (%s)", tag, uid, item)
	if err := c.writeLine(ctx, cmd); err != nil {
		return nil, common.Transient("mailbox fetch part", err)
	}
	var literal []byte
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return nil, common.Transient("mailbox fetch part", err)
		}
		if n, ok := literalSize(line); ok {
			buf := make([]byte, n)
			if _, err := readFull(ctx, c.conn, c.r, buf); err != nil {
				return nil, common.Transient("mailbox read literal", err)
			}
			literal = buf
			continue
		}
		if strings.HasPrefix(line, tag+" ") {
			if !strings.HasPrefix(line, tag+" OK") {
				return nil, common.Transient("mailbox fetch part", fmt.Errorf("server: %s", line))
			}
			break
		}
	}
	if literal == nil {
		return nil, common.Permanent("fetch part", fmt.Errorf("uid %d: no content returned", uid))
	}
	return literal, nil
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	_ = c.writeLine(context.Background(), c.nextTag()+" LOGOUT")
	return c.conn.Close()
}

// command sends one tagged command and collects untagged response lines
// until the tagged completion arrives.
func (c *Client) command(ctx context.Context, cmd string) ([]string, error) {
	tag := c.nextTag()
	if err := c.writeLine(ctx, tag+" "+cmd); err != nil {
		return nil, err
	}
	var lines []string
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(line, tag+" ") {
			status := strings.TrimPrefix(line, tag+" ")
			if !strings.HasPrefix(status, "OK") {
				return lines, fmt.Errorf("server rejected command: %s", status)
			}
			return lines, nil
		}
		lines = append(lines, line)
	}
}

func (c *Client) nextTag() string {
	c.tagSeq++
	return fmt.Sprintf("a%04d", c.tagSeq)
}

func (c *Client) writeLine(ctx context.Context, line string) error {
	if d, ok := ctx.Deadline(); ok {
		_ = c.conn.SetDeadline(d)
	}
	_, err := c.conn.Write([]byte(line + "\r\n"))
	return err
}

func (c *Client) readLine(ctx context.Context) (string, error) {
	if d, ok := ctx.Deadline(); ok {
		_ = c.conn.SetDeadline(d)
	}
	line, err := c.r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readFull(ctx context.Context, conn net.Conn, r *bufio.Reader, buf []byte) (int, error) {
	if d, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(d)
	} else {
		_ = conn.SetDeadline(time.Now().Add(2 * time.Minute))
	}
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

func extractUID(line string) uint32 {
	i := strings.Index(line, "UID ")
	if i < 0 {
		return 0
	}
	f := strings.FieldsFunc(line[i+4:], func(r rune) bool { return r == ' ' || r == ')' })
	if len(f) == 0 {
		return 0
	}
	n, err := strconv.ParseUint(f[0], 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// balancedSpan returns the leading parenthesized span of s, quote-aware.
// If parens never balance the whole remainder is returned so the parser
// can fail on it and trigger recovery.
func balancedSpan(s string) string {
	if !strings.HasPrefix(s, "(") {
		return s
	}
	depth, inQuote := 0, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case inQuote && c == '\\':
			i++
		case c == '"':
			inQuote = !inQuote
		case !inQuote && c == '(':
			depth++
		case !inQuote && c == ')':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return s
}

func literalSize(line string) (int, bool) {
	if !strings.HasSuffix(line, "}") {
		return 0, false
	}
	i := strings.LastIndex(line, "{")
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(line[i+1 : len(line)-1])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

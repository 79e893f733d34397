package auction

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/neonauction/auction-server/internal/domain"
)

// Room is one live auction. All state lives in memory behind mu; every
// mutating operation validates and applies under the write lock, and reads
// snapshot under the read lock. The only things that leave the lock are the
// event sink push (non-blocking by contract) and the completion callback,
// which runs on its own goroutine.
type Room struct {
	code   string
	public bool
	opts   Options
	clock  clockwork.Clock
	events EventSink

	// onCompleted fires once, off-lock, when the room reaches COMPLETED.
	onCompleted func(FinalResult)

	mu           sync.RWMutex
	status       domain.RoomStatus
	paused       bool
	defaultTimer int
	bidIncrement int

	teams      []*domain.Team // join order, host first
	teamsByTag map[domain.TeamTag]*domain.Team

	pool        []*domain.Player // auction order
	playersByID map[int]*domain.Player
	currentIdx  int

	currentBid     int
	highestBidder  *domain.Team
	advancePending bool

	logs []domain.LogEntry
	chat []domain.ChatMessage

	leaderboard []ScoreRow
	result      *FinalResult
	completedAt time.Time

	timer *countdown

	// epoch invalidates scheduled callbacks (advance delay, selection
	// timeout) the same way the countdown generation invalidates expiry.
	epoch uint64

	createdAt  time.Time
	lastActive atomic.Int64
}

func newRoom(code string, public bool, hostName string, hostTag domain.TeamTag, opts Options, clock clockwork.Clock, events EventSink, onCompleted func(FinalResult)) *Room {
	r := &Room{
		code:         code,
		public:       public,
		opts:         opts,
		clock:        clock,
		events:       events,
		onCompleted:  onCompleted,
		status:       domain.RoomStatusWaiting,
		defaultTimer: opts.DefaultTimerSeconds,
		bidIncrement: opts.BidIncrementLakhs,
		teamsByTag:   make(map[domain.TeamTag]*domain.Team),
		playersByID:  make(map[int]*domain.Player),
		currentIdx:   -1,
		createdAt:    clock.Now(),
	}
	r.timer = newCountdown(clock, r.handleExpiry)
	r.pool = domain.NewPool()
	for _, p := range r.pool {
		r.playersByID[p.ID] = p
	}
	host := &domain.Team{
		Tag:         hostTag,
		Manager:     hostName,
		BudgetLakhs: opts.BudgetLakhs,
		IsHost:      true,
	}
	r.teams = append(r.teams, host)
	r.teamsByTag[hostTag] = host
	r.touch()
	r.appendLogLocked(EventTeamJoined, fmt.Sprintf("%s joined as %s (host)", hostName, hostTag))
	return r
}

func (r *Room) Code() string { return r.code }

func (r *Room) touch() {
	r.lastActive.Store(r.clock.Now().UnixNano())
}

// idleSince reports whether the room has seen no activity for at least ttl.
func (r *Room) idleSince(now time.Time, ttl time.Duration) bool {
	return now.Sub(time.Unix(0, r.lastActive.Load())) >= ttl
}

// stop tears the room down: any armed timer or scheduled callback becomes
// a no-op. Called by the janitor with the room already removed from the store.
func (r *Room) stop() {
	r.mu.Lock()
	r.epoch++
	r.mu.Unlock()
	r.timer.stop()
}

// appendLogLocked records a log line and mirrors it to the event sink.
// Caller holds the write lock.
func (r *Room) appendLogLocked(typ EventType, msg string) {
	now := r.clock.Now()
	r.logs = append(r.logs, domain.LogEntry{ID: uuid.New(), Message: msg, At: now})
	if r.events != nil {
		r.events.Publish(r.code, Event{Type: typ, Code: r.code, Message: msg, At: now})
	}
}

func (r *Room) hostCheckLocked(tag domain.TeamTag) (*domain.Team, error) {
	t, ok := r.teamsByTag[tag]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	if !t.IsHost {
		return nil, domain.ErrForbidden
	}
	return t, nil
}

func (r *Room) currentPlayerLocked() *domain.Player {
	if r.currentIdx < 0 || r.currentIdx >= len(r.pool) {
		return nil
	}
	return r.pool[r.currentIdx]
}

// Join adds a manager under an unclaimed team tag. Allowed while the room is
// WAITING or LIVE; late joiners enter with a full budget and an empty squad.
func (r *Room) Join(manager string, tag domain.TeamTag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if r.status != domain.RoomStatusWaiting && r.status != domain.RoomStatusLive {
		return domain.ErrInvalidState
	}
	if !domain.ValidTeamTag(tag) {
		return domain.ErrInvalidTeam
	}
	if _, taken := r.teamsByTag[tag]; taken {
		return domain.ErrTeamTaken
	}
	if len(r.teams) >= domain.MaxTeamsPerRoom {
		return domain.ErrRoomFull
	}
	t := &domain.Team{Tag: tag, Manager: manager, BudgetLakhs: r.opts.BudgetLakhs}
	r.teams = append(r.teams, t)
	r.teamsByTag[tag] = t
	r.appendLogLocked(EventTeamJoined, fmt.Sprintf("%s joined as %s", manager, tag))
	return nil
}

// Start moves the room from WAITING to LIVE and puts the first player up.
// Host only. Starting an already-live room is a no-op so a double-tapped
// button doesn't error.
func (r *Room) Start(tag domain.TeamTag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if _, err := r.hostCheckLocked(tag); err != nil {
		return err
	}
	if r.status == domain.RoomStatusLive {
		return nil
	}
	if r.status != domain.RoomStatusWaiting {
		return domain.ErrInvalidState
	}
	r.status = domain.RoomStatusLive
	r.appendLogLocked(EventAuctionStarted, "Auction started")
	r.putNextPlayerUpLocked()
	return nil
}

// putNextPlayerUpLocked advances currentIdx to the next pending player and
// arms the countdown, or enters SELECTION when the pool is exhausted.
func (r *Room) putNextPlayerUpLocked() {
	r.currentBid = 0
	r.highestBidder = nil
	for i := r.currentIdx + 1; i < len(r.pool); i++ {
		if r.pool[i].Status == domain.PlayerStatusPending {
			r.currentIdx = i
			p := r.pool[i]
			r.appendLogLocked(EventPlayerUp, fmt.Sprintf("%s up for auction at base price %d lakhs", p.Name, p.BasePrice))
			r.timer.start(time.Duration(r.defaultTimer) * time.Second)
			return
		}
	}
	r.currentIdx = len(r.pool)
	r.enterSelectionLocked()
}

// TogglePause flips the paused flag. Host only, LIVE only. Pausing freezes
// the countdown; resuming continues from the frozen value. An advance that
// came due while paused runs on resume.
func (r *Room) TogglePause(tag domain.TeamTag) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if _, err := r.hostCheckLocked(tag); err != nil {
		return false, err
	}
	if r.status != domain.RoomStatusLive {
		return false, domain.ErrInvalidState
	}
	if r.paused {
		r.paused = false
		r.timer.resume()
		r.appendLogLocked(EventAuctionResumed, "Auction resumed")
		if r.advancePending {
			r.advancePending = false
			r.putNextPlayerUpLocked()
		} else if p := r.currentPlayerLocked(); p != nil && !p.Resolved() && r.timer.remainingSeconds() == 0 {
			// Countdown fired in the instant the pause landed; its expiry
			// was swallowed, so settle the player now.
			r.resolveLocked()
		}
		return false, nil
	}
	r.paused = true
	r.timer.pause()
	r.appendLogLocked(EventAuctionPaused, "Auction paused")
	return true, nil
}

// PlaceBid arbitrates one bid. The checks run in a fixed order so a bid that
// is wrong in several ways always reports the same failure; the amount check
// recomputes the required value server-side and demands an exact match, which
// is what turns two racing equal bids into one winner and one stale.
func (r *Room) PlaceBid(tag domain.TeamTag, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	team, ok := r.teamsByTag[tag]
	if !ok {
		return domain.ErrTeamNotFound
	}
	p := r.currentPlayerLocked()
	if r.status != domain.RoomStatusLive || r.paused || p == nil || p.Resolved() {
		return domain.ErrNotAcceptingBids
	}
	if r.highestBidder == team {
		return domain.ErrAlreadyLeading
	}
	required := p.BasePrice
	if r.highestBidder != nil {
		required = r.currentBid + r.bidIncrement
	}
	if amount != required {
		return fmt.Errorf("%w: bid %d, current price is %d", domain.ErrStaleBid, amount, required)
	}
	if amount > team.BudgetLakhs {
		return domain.ErrInsufficientBudget
	}
	if len(team.Players) >= domain.SquadCap {
		return domain.ErrSquadFull
	}
	if p.IsOverseas() && team.OverseasCount(r.playersByID) >= domain.OverseasCap {
		return domain.ErrOverseasLimitReached
	}
	r.currentBid = amount
	r.highestBidder = team
	r.appendLogLocked(EventBidPlaced, fmt.Sprintf("%s bid %d lakhs for %s", tag, amount, p.Name))
	if r.opts.AntiSnipe > 0 {
		r.timer.extendTo(r.opts.AntiSnipe)
	}
	return nil
}

// handleExpiry is the countdown callback. It re-checks the generation under
// the room lock: if a skip or restart beat it here, it does nothing.
func (r *Room) handleExpiry(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.timer.currentGen(gen) {
		return
	}
	if r.status != domain.RoomStatusLive || r.paused {
		return
	}
	r.resolveLocked()
}

// resolveLocked settles the current player as SOLD or UNSOLD. Idempotent:
// an already-resolved player is left alone.
func (r *Room) resolveLocked() {
	p := r.currentPlayerLocked()
	if p == nil || p.Resolved() {
		return
	}
	r.timer.stop()
	if r.highestBidder != nil {
		team := r.highestBidder
		p.Status = domain.PlayerStatusSold
		p.SoldPrice = r.currentBid
		p.SoldTo = team.Tag
		team.BudgetLakhs -= r.currentBid
		team.Players = append(team.Players, domain.OwnedPlayer{PlayerID: p.ID, Price: r.currentBid})
		r.appendLogLocked(EventPlayerSold, fmt.Sprintf("%s SOLD to %s for %d lakhs", p.Name, team.Tag, r.currentBid))
	} else {
		p.Status = domain.PlayerStatusUnsold
		r.appendLogLocked(EventPlayerUnsold, fmt.Sprintf("%s went UNSOLD", p.Name))
	}
	r.scheduleAdvanceLocked()
}

// Skip marks the current player SKIPPED, discarding any standing bid.
// Host only. Skipping a player that already resolved is a no-op.
func (r *Room) Skip(tag domain.TeamTag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if _, err := r.hostCheckLocked(tag); err != nil {
		return err
	}
	if r.status != domain.RoomStatusLive {
		return domain.ErrInvalidState
	}
	p := r.currentPlayerLocked()
	if p == nil || p.Resolved() {
		return nil
	}
	r.timer.stop()
	p.Status = domain.PlayerStatusSkipped
	r.appendLogLocked(EventPlayerSkipped, fmt.Sprintf("%s skipped by host", p.Name))
	r.scheduleAdvanceLocked()
	return nil
}

// scheduleAdvanceLocked arms the post-resolution display window. The closure
// captures the current epoch so a room that ended or was torn down in the
// meantime ignores it.
func (r *Room) scheduleAdvanceLocked() {
	epoch := r.epoch
	r.clock.AfterFunc(r.opts.ResolveDelay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.epoch != epoch || r.status != domain.RoomStatusLive {
			return
		}
		if r.paused {
			r.advancePending = true
			return
		}
		r.putNextPlayerUpLocked()
	})
}

// End is the host override. From LIVE it abandons the remaining pool and
// moves to SELECTION; from SELECTION it force-completes with whatever XIs
// are in.
func (r *Room) End(tag domain.TeamTag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if _, err := r.hostCheckLocked(tag); err != nil {
		return err
	}
	switch r.status {
	case domain.RoomStatusWaiting, domain.RoomStatusLive:
		r.timer.stop()
		r.paused = false
		r.appendLogLocked(EventAuctionEnded, "Auction ended by host")
		r.enterSelectionLocked()
		return nil
	case domain.RoomStatusSelection:
		r.completeLocked()
		return nil
	default:
		return domain.ErrInvalidState
	}
}

// enterSelectionLocked moves to SELECTION and arms the selection timeout.
// If no team qualified there is nothing to select; the room completes
// immediately.
func (r *Room) enterSelectionLocked() {
	r.status = domain.RoomStatusSelection
	r.epoch++
	r.timer.stop()
	r.currentBid = 0
	r.highestBidder = nil
	r.appendLogLocked(EventAuctionEnded, "Auction complete, team selection open")
	if r.pendingXILocked() == 0 {
		r.completeLocked()
		return
	}
	epoch := r.epoch
	r.clock.AfterFunc(r.opts.SelectionTimeout, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.epoch != epoch || r.status != domain.RoomStatusSelection {
			return
		}
		r.appendLogLocked(EventRoomCompleted, "Selection window expired")
		r.completeLocked()
	})
}

// pendingXILocked counts qualified teams that have not yet submitted an XI.
func (r *Room) pendingXILocked() int {
	n := 0
	for _, t := range r.teams {
		if t.Qualified() && t.XI == nil {
			n++
		}
	}
	return n
}

// SubmitXI records a team's playing XI. One submission per team; the room
// completes as soon as the last qualified team is in.
func (r *Room) SubmitXI(tag domain.TeamTag, playerIDs []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	team, ok := r.teamsByTag[tag]
	if !ok {
		return domain.ErrTeamNotFound
	}
	if r.status != domain.RoomStatusSelection {
		return domain.ErrInvalidState
	}
	if !team.Qualified() {
		return domain.ErrNotQualified
	}
	if team.XI != nil {
		return domain.ErrAlreadySubmitted
	}
	if err := ValidateXI(team, playerIDs, r.playersByID); err != nil {
		return err
	}
	ids := make([]int, len(playerIDs))
	copy(ids, playerIDs)
	team.XI = &domain.XISubmission{PlayerIDs: ids, SubmittedAt: r.clock.Now()}
	r.appendLogLocked(EventXISubmitted, fmt.Sprintf("%s submitted their playing XI", tag))
	if r.pendingXILocked() == 0 {
		r.completeLocked()
	}
	return nil
}

// completeLocked finishes the room: leaderboard is computed once and frozen,
// and the completion callback (archive) fires off-lock.
func (r *Room) completeLocked() {
	if r.status == domain.RoomStatusCompleted {
		return
	}
	r.status = domain.RoomStatusCompleted
	r.epoch++
	r.timer.stop()
	r.completedAt = r.clock.Now()
	r.leaderboard = computeLeaderboard(r.teams, r.playersByID, r.opts.Scoring)
	res := r.buildResultLocked()
	r.result = &res
	if len(r.leaderboard) > 0 {
		r.appendLogLocked(EventRoomCompleted, fmt.Sprintf("%s wins with %.1f points", r.leaderboard[0].Team, r.leaderboard[0].Score))
	} else {
		r.appendLogLocked(EventRoomCompleted, "Auction complete, no team qualified")
	}
	if r.onCompleted != nil {
		cb := r.onCompleted
		go cb(res)
	}
}

// UpdateSettings changes the per-player countdown duration. Host only,
// applies from the next player; a running countdown keeps its deadline.
func (r *Room) UpdateSettings(tag domain.TeamTag, timerSeconds int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if _, err := r.hostCheckLocked(tag); err != nil {
		return err
	}
	if r.status == domain.RoomStatusSelection || r.status == domain.RoomStatusCompleted {
		return domain.ErrInvalidState
	}
	switch timerSeconds {
	case 5, 10, 15, 20, 25:
	default:
		return fmt.Errorf("%w: timer must be one of 5, 10, 15, 20, 25 seconds", domain.ErrInvalidState)
	}
	r.defaultTimer = timerSeconds
	return nil
}

// Snapshot builds the polled room view. viewer, when it names a joined team,
// fills user_budget.
func (r *Room) Snapshot(viewer domain.TeamTag) StateSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	s := StateSnapshot{
		Timer:             r.timer.remainingSeconds(),
		DefaultTimer:      r.defaultTimer,
		IsPaused:          r.paused,
		IsLive:            r.status == domain.RoomStatusLive,
		Status:            r.status,
		PlayersJoined:     len(r.teams),
		TotalPlayersLimit: domain.MaxTeamsPerRoom,
		CurrentBid:        r.currentBid,
		BidIncrement:      r.bidIncrement,
	}
	if r.highestBidder != nil {
		tag := string(r.highestBidder.Tag)
		s.HighestBidder = &tag
	}
	if p := r.currentPlayerLocked(); p != nil {
		s.CurrentPlayer = &PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			Role:      string(p.Role),
			Country:   p.Country,
			BasePrice: p.BasePrice,
			Age:       p.Age,
			Hand:      p.BattingHand,
			Bowling:   p.BowlingStyle,
		}
		if p.Resolved() {
			s.SoldStatus = string(p.Status)
			s.SoldPrice = p.SoldPrice
			s.SoldTeam = string(p.SoldTo)
		}
	}
	if t, ok := r.teamsByTag[viewer]; ok {
		budget := domain.LakhsToCr(t.BudgetLakhs)
		s.UserBudget = &budget
	}
	return s
}

func (r *Room) teamSummaryLocked(t *domain.Team) TeamSummary {
	players := make([]OwnedView, 0, len(t.Players))
	for _, op := range t.Players {
		p := r.playersByID[op.PlayerID]
		players = append(players, OwnedView{
			ID:      p.ID,
			Name:    p.Name,
			Role:    string(p.Role),
			Country: p.Country,
			Price:   op.Price,
		})
	}
	return TeamSummary{
		Team:            string(t.Tag),
		Username:        t.Manager,
		PlayersCount:    len(t.Players),
		BudgetRemaining: domain.LakhsToCr(t.BudgetLakhs),
		Players:         players,
	}
}

// MyTeam returns one team's squad and remaining budget.
func (r *Room) MyTeam(tag domain.TeamTag) (TeamSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	t, ok := r.teamsByTag[tag]
	if !ok {
		return TeamSummary{}, domain.ErrTeamNotFound
	}
	return r.teamSummaryLocked(t), nil
}

// Summary returns every joined team's squad, in join order.
func (r *Room) Summary() []TeamSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	out := make([]TeamSummary, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, r.teamSummaryLocked(t))
	}
	return out
}

// UnsoldPlayers lists players that went unsold or were skipped.
func (r *Room) UnsoldPlayers() []UnsoldView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	var out []UnsoldView
	for _, p := range r.pool {
		if p.Status == domain.PlayerStatusUnsold || p.Status == domain.PlayerStatusSkipped {
			out = append(out, UnsoldView{
				Name:      p.Name,
				Role:      string(p.Role),
				BasePrice: p.BasePrice,
				Status:    string(p.Status),
			})
		}
	}
	return out
}

// UpcomingPlayers lists the pending players after the one currently up.
func (r *Room) UpcomingPlayers() []UpcomingView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	var out []UpcomingView
	for i := r.currentIdx + 1; i < len(r.pool); i++ {
		p := r.pool[i]
		if p.Status != domain.PlayerStatusPending {
			continue
		}
		out = append(out, UpcomingView{
			ID:        p.ID,
			Name:      p.Name,
			Role:      string(p.Role),
			Country:   p.Country,
			BasePrice: p.BasePrice,
			SetNo:     p.SetNo,
		})
	}
	return out
}

// Qualification reports QUALIFIED or ELIMINATED per team. Only meaningful
// once the room has left LIVE, but readable at any time.
func (r *Room) Qualification() []QualificationView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	out := make([]QualificationView, 0, len(r.teams))
	for _, t := range r.teams {
		status := "ELIMINATED"
		if t.Qualified() {
			status = "QUALIFIED"
		}
		out = append(out, QualificationView{Team: string(t.Tag), Status: status})
	}
	return out
}

// AddChat appends a chat message, trimming history to the retention cap.
func (r *Room) AddChat(sender, message string) domain.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	msg := domain.ChatMessage{
		ID:      uuid.New(),
		Sender:  sender,
		Message: message,
		SentAt:  r.clock.Now(),
	}
	r.chat = append(r.chat, msg)
	if len(r.chat) > domain.ChatRetention {
		r.chat = r.chat[len(r.chat)-domain.ChatRetention:]
	}
	if r.events != nil {
		r.events.Publish(r.code, Event{Type: EventChatMessage, Code: r.code, Message: fmt.Sprintf("%s: %s", sender, message), At: msg.SentAt})
	}
	return msg
}

func (r *Room) ChatHistory() []domain.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	out := make([]domain.ChatMessage, len(r.chat))
	copy(out, r.chat)
	return out
}

func (r *Room) Logs() []domain.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	out := make([]domain.LogEntry, len(r.logs))
	copy(out, r.logs)
	return out
}

// Winner returns the frozen final result. ErrResultsNotReady until COMPLETED.
func (r *Room) Winner() (FinalResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.touch()
	if r.status != domain.RoomStatusCompleted || r.result == nil {
		return FinalResult{}, domain.ErrResultsNotReady
	}
	return *r.result, nil
}

// PublicSummary is the room's row in the public listing.
func (r *Room) PublicSummary() RoomSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	host, hostTeam := "", ""
	for _, t := range r.teams {
		if t.IsHost {
			host = t.Manager
			hostTeam = string(t.Tag)
			break
		}
	}
	return RoomSummary{
		Code:        r.code,
		Status:      r.status,
		Host:        host,
		HostTeam:    hostTeam,
		PlayerCount: len(r.teams),
	}
}

func (r *Room) isPublic() bool { return r.public }

// Status reads the room's lifecycle state.
func (r *Room) Status() domain.RoomStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hammer/internal/common/logging"
	"github.com/KirkDiggler/hammer/internal/models"
)

type fakeSession struct {
	mu        sync.Mutex
	opened    bool
	closed    bool
	created   []string
	deleted   []string
	sent      []*discordgo.MessageSend
	edits     []*discordgo.MessageEdit
	responses []*discordgo.InteractionResponse
	sendErr   error
	updates   chan struct{}
}

func newFakeSession() *fakeSession {
	return &fakeSession{updates: make(chan struct{}, 16)}
}

func (f *fakeSession) Open() error {
	f.opened = true
	return nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

func (f *fakeSession) AddHandler(interface{}) func() {
	return func() {}
}

func (f *fakeSession) ApplicationCommandCreate(_ string, _ string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.created = append(f.created, cmd.Name)
	return &discordgo.ApplicationCommand{ID: "cmd-" + cmd.Name, Name: cmd.Name}, nil
}

func (f *fakeSession) ApplicationCommandDelete(_, _, cmdID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, cmdID)
	return nil
}

func (f *fakeSession) ChannelMessageSendComplex(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer func() {
		f.mu.Unlock()
		f.updates <- struct{}{}
	}()
	if f.sendErr != nil {
		err := f.sendErr
		f.sendErr = nil
		return nil, err
	}
	f.sent = append(f.sent, data)
	return &discordgo.Message{ID: "msg-1"}, nil
}

func (f *fakeSession) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer func() {
		f.mu.Unlock()
		f.updates <- struct{}{}
	}()
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID}, nil
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

type MirrorTestSuite struct {
	suite.Suite
	session *fakeSession
	mirror  *Mirror
}

func (s *MirrorTestSuite) SetupTest() {
	s.session = newFakeSession()
	mirror, err := newMirror(&Config{
		ChannelID:     "channel-1",
		ApplicationID: "app-1",
		EditInterval:  time.Millisecond,
		Logger:        logging.Discard(),
	}, s.session)
	s.Require().NoError(err)
	s.mirror = mirror
}

func (s *MirrorTestSuite) runMirror() (context.CancelFunc, chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.mirror.Run(ctx) }()
	return cancel, done
}

func (s *MirrorTestSuite) waitUpdate() {
	select {
	case <-s.session.updates:
	case <-time.After(2 * time.Second):
		s.FailNow("no message update")
	}
}

func (s *MirrorTestSuite) TestNewRequiresToken() {
	_, err := New(&Config{ChannelID: "channel-1"})
	s.Error(err)

	_, err = New(nil)
	s.Error(err)
}

func (s *MirrorTestSuite) TestNewMirrorRequiresChannel() {
	_, err := newMirror(&Config{}, s.session)
	s.Error(err)
}

func (s *MirrorTestSuite) TestPublishNeverBlocks() {
	for i := 0; i < 10; i++ {
		s.NoError(s.mirror.Publish(context.Background(), &models.Scoreboard{CurrentEnd: i}))
	}
	s.Equal(9, s.mirror.Latest().CurrentEnd)
}

func (s *MirrorTestSuite) TestFirstUpdateSendsThenEdits() {
	cancel, done := s.runMirror()

	board := midMatchBoard()
	s.Require().NoError(s.mirror.Publish(context.Background(), board))
	s.waitUpdate()

	board2 := midMatchBoard()
	board2.CurrentEnd = 4
	s.Require().NoError(s.mirror.Publish(context.Background(), board2))
	s.waitUpdate()

	cancel()
	s.ErrorIs(<-done, context.Canceled)

	s.Require().Len(s.session.sent, 1)
	s.Equal("Rockets vs Team B", s.session.sent[0].Embeds[0].Title)
	s.Require().Len(s.session.edits, 1)
	s.Equal("channel-1", s.session.edits[0].Channel)
	s.Equal("msg-1", s.session.edits[0].ID)
	s.Contains((*s.session.edits[0].Embeds)[0].Description, "End 4 of 4")
}

func (s *MirrorTestSuite) TestSendFailureRetriesWithNextSnapshot() {
	s.session.sendErr = errors.New("discord unavailable")
	cancel, done := s.runMirror()

	s.Require().NoError(s.mirror.Publish(context.Background(), midMatchBoard()))
	s.waitUpdate()
	s.Require().NoError(s.mirror.Publish(context.Background(), midMatchBoard()))
	s.waitUpdate()

	cancel()
	<-done

	s.Len(s.session.sent, 1)
	s.Empty(s.session.edits)
}

func (s *MirrorTestSuite) TestStartRegistersAndStopDeletesCommand() {
	s.Require().NoError(s.mirror.Start())
	s.True(s.session.opened)
	s.Equal([]string{"scoreboard"}, s.session.created)

	s.Require().NoError(s.mirror.Stop())
	s.Equal([]string{"cmd-scoreboard"}, s.session.deleted)
	s.True(s.session.closed)
}

func (s *MirrorTestSuite) TestStartWithoutApplicationIDSkipsCommands() {
	s.mirror.config.ApplicationID = ""
	s.Require().NoError(s.mirror.Start())
	s.Empty(s.session.created)
}

func (s *MirrorTestSuite) TestInteractionRoutesToCommand() {
	s.Require().NoError(s.mirror.Start())
	s.Require().NoError(s.mirror.Publish(context.Background(), midMatchBoard()))

	s.mirror.dispatchInteraction(s.session, commandInteraction("scoreboard", "show"))

	s.Require().Len(s.session.responses, 1)
	s.Equal("Rockets vs Team B", s.session.responses[0].Data.Embeds[0].Title)
}

func (s *MirrorTestSuite) TestInteractionForUnknownCommandIgnored() {
	s.Require().NoError(s.mirror.Start())
	s.mirror.dispatchInteraction(s.session, commandInteraction("roll", "start"))
	s.Empty(s.session.responses)
}

func TestMirrorSuite(t *testing.T) {
	suite.Run(t, new(MirrorTestSuite))
}

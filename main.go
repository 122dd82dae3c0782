// main.go
package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"ethosbot/modules"
	"ethosbot/pkg/health"
	"ethosbot/pkg/version"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

// ethosCommand is the slash command registered with Discord.
var ethosCommand = &discordgo.ApplicationCommand{
	Name:        "ethos",
	Description: "Look up Ethos profile for a Twitter user",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "twitter_handle",
			Description: "Twitter handle to look up",
			Required:    true,
		},
	},
}

// botStatus tracks process-level state for the health server.
type botStatus struct {
	connected atomic.Bool
	lookups   atomic.Int64
	started   time.Time
}

func (b *botStatus) IsConnected() bool        { return b.connected.Load() }
func (b *botStatus) GetLookupCount() int64    { return b.lookups.Load() }
func (b *botStatus) GetUptime() time.Duration { return time.Since(b.started) }

// handleEthos runs one /ethos invocation: defer the response, look up the
// profile, deliver the rendered reply as a follow-up.
func handleEthos(s *discordgo.Session, i *discordgo.InteractionCreate, ethos *modules.Client, status *botStatus) {
	var handle string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "twitter_handle" {
			handle = opt.StringValue()
		}
	}

	// Defer the response since the API call might take time.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Println("defer response:", err)
		return
	}

	res := ethos.Lookup(handle)
	status.lookups.Add(1)
	reply := modules.BuildReply(res)

	params := &discordgo.WebhookParams{}
	if reply.Embed != nil {
		params.Embeds = []*discordgo.MessageEmbed{toMessageEmbed(reply.Embed)}
	} else {
		params.Content = reply.Text
	}

	if _, err := s.FollowupMessageCreate(i.Interaction, true, params); err != nil {
		log.Println("followup send:", err)
	}
}

func toMessageEmbed(e *modules.Embed) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: e.Title,
		Color: e.Color,
	}
	for _, f := range e.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  f.Name,
			Value: f.Value,
		})
	}
	return embed
}

func main() {
	// Load .env if available
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Fatal("Missing bot token: DISCORD_TOKEN")
	}

	// One shared API client for all invocations. A missing ETHOS_API_KEY
	// surfaces as a lookup failure, not a startup failure.
	ethos := modules.NewClient(os.Getenv("ETHOS_API_KEY"), os.Getenv("ETHOS_API_URL"))

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatal("discordgo.New:", err)
	}

	status := &botStatus{started: time.Now()}

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		status.connected.Store(true)
		log.Printf("%s has connected to Discord!", r.User.String())
	})
	session.AddHandler(func(s *discordgo.Session, d *discordgo.Disconnect) {
		status.connected.Store(false)
	})
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if i.ApplicationCommandData().Name != ethosCommand.Name {
			return
		}
		handleEthos(s, i, ethos, status)
	})

	if err := session.Open(); err != nil {
		log.Fatal("session.Open:", err)
	}
	defer session.Close()

	cmd, err := session.ApplicationCommandCreate(session.State.User.ID, "", ethosCommand)
	if err != nil {
		log.Fatal("ApplicationCommandCreate:", err)
	}
	defer func() {
		if err := session.ApplicationCommandDelete(session.State.User.ID, "", cmd.ID); err != nil {
			log.Println("ApplicationCommandDelete:", err)
		}
	}()

	// Health server (simple)
	httpPort := 8080
	if p := os.Getenv("HEALTH_PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			httpPort = v
		}
	}
	info := &health.BotInfo{
		Name:        version.BotName,
		Version:     version.Version(),
		Command:     ethosCommand.Name,
		Description: ethosCommand.Description,
	}
	healthServer := health.NewServer(httpPort, info, status)
	go func() {
		if err := healthServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println("health server error:", err)
		}
	}()
	defer healthServer.Stop()

	log.Printf("%s running. Press Ctrl+C to exit.", version.GetVersionString())
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("Shutting down...")
}

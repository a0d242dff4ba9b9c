package config

// Static roster tables. Summoner display names map to the opaque PUUIDs
// the Riot API wants (one table per game since the accounts differ),
// plus Discord mention strings and the server's custom emoji.
//
// Editing the roster means editing these tables and restarting; the
// board is rebuilt from scratch on startup anyway.

// SummonerNames returns the tracked roster in no particular order.
func SummonerNames() []string {
	names := make([]string, 0, len(lolPUUIDs))
	for name := range lolPUUIDs {
		names = append(names, name)
	}
	return names
}

// LoLPUUID resolves a display name for League lookups; empty when the
// player has no League account on file.
func LoLPUUID(name string) string {
	return lolPUUIDs[name]
}

// TFTPUUID resolves a display name for TFT lookups.
func TFTPUUID(name string) string {
	return tftPUUIDs[name]
}

// PUUIDForGame resolves by the riot API family tag.
func PUUIDForGame(game, name string) string {
	if game == "tft" {
		return TFTPUUID(name)
	}
	return LoLPUUID(name)
}

// Mention returns the player's Discord mention, or the plain name when
// no Discord account is on file.
func Mention(name string) string {
	if m, ok := discordMentions[name]; ok {
		return m
	}
	return name
}

// Emoji returns a server custom-emoji string by short name, or empty.
func Emoji(code string) string {
	return emojiCodes[code]
}

var lolPUUIDs = map[string]string{
	"Wallaby":      "6fRrVc5qGLPmwMT0HEoqLnBKIaU3jX0YwWkCcR0Zf8dK3RxO9p4smTtq0g1BQLyji7_tCzw_kqqBAA",
	"Gourish":      "a1BcPq8kXU2ml4yDCnWvh3jZ7Jt5sRr9E0gqOuVxT6M_wNiKefHbLA8dys2ZoQCPp4v1jG5m3nTUBQ",
	"Chandrian":    "Qw3ErT5yUi9oPa1sDf7gHj2kLz8xCv4bNm6MnB0VcXq_ZSAyhGdKjEpRtIuWoL5fYmC3xNkOQe2PAA",
	"Mortpocalyps": "Zx8cVb2nMq5wEr1tYu7iOp4aSd0fGh6jKl3LzXcVqBN_mWEpRtYuIoPaSdFgHj9kQwErTzUiOpADBg",
	"Cathiago":     "Lk9jHg6fDs3aPo1iUy7tRe5wQz8xCv2bNm4MnBvCxZq_SdFgHjKlPoIuYtRwQeWrTzUxIoPaSdQQCA",
	"DongerJ":      "Mn4bVc8xZq2wSe6rTy0uIk3oPl7aDf1gHj5dJsKfLgQ_ZxCvBnMqWwEeRrTtYyUuIiOoPpAsDdTgBA",
	"Yamesy":       "Pa7sDf1gHj4kLz9xCv3bNm8MnB2VcXq6ZwEr5tYu0iQ_OkLjHgFdSaPoIuYtRrEwQzXcVbNmMqHwCQ",
	"Barack":       "Ui2oPa6sDf0gHj7kLz1xCv5bNm3MnB9VcXq4ZwEr8tY_u1iOkLjHgFdSaPoQwErTzUxIvBnMmQACA",
	"Buffet":       "Rt5yUi1oPa8sDf2gHj6kLz0xCv7bNm5MnB1VcXq3ZwE_r9tYu4iOkLjHgFdSaPoQwXcVbNmMqTgDA",
	"Svintus":      "Ee3rTt7yUu2iOo9pPa5sDd1fGg8hHj4kKl6lZz0xXcC_vVbBnNmMqQwWeEr2tTyYuUiIoOpPaAsBQ",
	"Thiago":       "Gh1jKl5zXc9vBn3mQw7eRt2yUi6oPa0sDf8gJk4lZx_cVbNmMqWwEeRrTtYyUuIiOoPpAsSdDfGQBA",
	"Joever":       "Jk6lZx0cVb4nMq8wEe2rTt7yUu1iOo5pPa9sDd3fGg_hHjKkLlZzXxCcVvBbNnMmQqWwEeRrTyAACA",
}

var tftPUUIDs = map[string]string{
	"Wallaby":      "6fRrVc5qGLPmwMT0HEoqLnBKIaU3jX0YwWkCcR0Zf8dK3RxO9p4smTtq0g1BQLyji7_tCzw_kqqBAA",
	"Gourish":      "a1BcPq8kXU2ml4yDCnWvh3jZ7Jt5sRr9E0gqOuVxT6M_wNiKefHbLA8dys2ZoQCPp4v1jG5m3nTUBQ",
	"Chandrian":    "Qw3ErT5yUi9oPa1sDf7gHj2kLz8xCv4bNm6MnB0VcXq_ZSAyhGdKjEpRtIuWoL5fYmC3xNkOQe2PAA",
	"Mortpocalyps": "Zx8cVb2nMq5wEr1tYu7iOp4aSd0fGh6jKl3LzXcVqBN_mWEpRtYuIoPaSdFgHj9kQwErTzUiOpADBg",
	"Cathiago":     "Lk9jHg6fDs3aPo1iUy7tRe5wQz8xCv2bNm4MnBvCxZq_SdFgHjKlPoIuYtRwQeWrTzUxIoPaSdQQCA",
	"DongerJ":      "Mn4bVc8xZq2wSe6rTy0uIk3oPl7aDf1gHj5dJsKfLgQ_ZxCvBnMqWwEeRrTtYyUuIiOoPpAsDdTgBA",
	"Yamesy":       "Pa7sDf1gHj4kLz9xCv3bNm8MnB2VcXq6ZwEr5tYu0iQ_OkLjHgFdSaPoIuYtRrEwQzXcVbNmMqHwCQ",
	"Barack":       "Ui2oPa6sDf0gHj7kLz1xCv5bNm3MnB9VcXq4ZwEr8tY_u1iOkLjHgFdSaPoQwErTzUxIvBnMmQACA",
	"Buffet":       "Rt5yUi1oPa8sDf2gHj6kLz0xCv7bNm5MnB1VcXq3ZwE_r9tYu4iOkLjHgFdSaPoQwXcVbNmMqTgDA",
	"Svintus":      "Ee3rTt7yUu2iOo9pPa5sDd1fGg8hHj4kKl6lZz0xXcC_vVbBnNmMqQwWeEr2tTyYuUiIoOpPaAsBQ",
	"Thiago":       "Gh1jKl5zXc9vBn3mQw7eRt2yUi6oPa0sDf8gJk4lZx_cVbNmMqWwEeRrTtYyUuIiOoPpAsSdDfGQBA",
	"Joever":       "Jk6lZx0cVb4nMq8wEe2rTt7yUu1iOo5pPa9sDd3fGg_hHjKkLlZzXxCcVvBbNnMmQqWwEeRrTyAACA",
}

var discordMentions = map[string]string{
	"Wallaby":      "<@181769222638469121>",
	"Gourish":      "<@700837976544116808>",
	"Chandrian":    "<@213043101236985856>",
	"Mortpocalyps": "<@155149108183695360>",
	"Cathiago":     "<@298411606000737251>",
	"DongerJ":      "<@331942091431870465>",
	"Yamesy":       "<@190519304494448640>",
	"Barack":       "<@841217828028612628>",
	"Buffet":       "<@92815323581878272>",
	"Svintus":      "<@404713245117972480>",
	"Thiago":       "<@145287004019752960>",
	"Joever":       "<@268234104404836352>",
}

var emojiCodes = map[string]string{
	"pogo":           "<:PogO:949833186689568768>",
	"poggies":        "<:POGGIES:926135482360950824>",
	"sadge":          "<:Sadge:936659715136815124>",
	"business":       "<:Business:983687455118140477>",
	"cathiago":       "<:Cathiago:1024375272452597830>",
	"pepeshrug":      "<:pepeShrug:938262852627017799>",
	"scam":           "<:SCAM:1008454701685030973>",
	"pantsgrab":      "<:PantsGrab:988898968924463164>",
	"deadge":         "<:Deadge:1010406543774146672>",
	"aycaramba":      "<:AYCARAMBA:1024374361047457812>",
	"huh":            "<:HUH:1024374963660730410>",
	"dongerj":        "<:DongerJ:1031266384185544754>",
	"pepestrong":     "<:pepeStrong:938263353615667300>",
	"peepoflor":      "<:peepoFlor:967027400044138566>",
	"yeahboi":        "<:YEAHBOI:938263050904090655>",
	"salute":         "<:Salute:1024374682675249243>",
	"joever":         "<:Joever:1189692686017961984>",
	"icant":          "<:ICANT:1024374847828422788>",
	"xdd":            "<:xdd:1024374747526864926>",
	"yamesy":         "<:Yamesy:1089692686017961985>",
	"barack":         "<:Barack:1189692686017961986>",
	"hah":            "<:HAH:1024374647826422787>",
	"buffet":         "<:Buffet:1024374947826422789>",
	"wallabyBald":    "<:WallabyBald:1024375047826422790>",
	"absolutecinema": "<:AbsoluteCinema:1289692686017961987>",
}

package briefing

import "strings"

type Topic string

const (
	TopicTVStreaming    Topic = "TV/Streaming"
	TopicTelco5G        Topic = "Telco/5G"
	TopicMediaPlatforms Topic = "Media/Platforms"
	TopicAICloudQuantum Topic = "AI/Cloud/Quantum"
	TopicSpaceInfra     Topic = "Space/Infra"
	TopicRobotics       Topic = "Robotics/Automation"
	TopicBroadcastVideo Topic = "Broadcast/Video"
	TopicSatelliteSat   Topic = "Satellite/Satcom"
)

const DefaultTopic = TopicAICloudQuantum

var allTopics = []Topic{
	TopicTVStreaming,
	TopicTelco5G,
	TopicMediaPlatforms,
	TopicAICloudQuantum,
	TopicSpaceInfra,
	TopicRobotics,
	TopicBroadcastVideo,
	TopicSatelliteSat,
}

var validTopics = func() map[Topic]struct{} {
	m := make(map[Topic]struct{}, len(allTopics))
	for _, t := range allTopics {
		m[t] = struct{}{}
	}
	return m
}()

// AllTopics returns the closed topic enumeration in rendering order.
func AllTopics() []Topic {
	out := make([]Topic, len(allTopics))
	copy(out, allTopics)
	return out
}

// ClassifyTopic validates an article's pre-set topic attribute and falls
// back to the default. No inference happens here; upstream stages own that.
func ClassifyTopic(a Article) Topic {
	t := Topic(strings.TrimSpace(a.Topic))
	if _, ok := validTopics[t]; ok {
		return t
	}
	return DefaultTopic
}

package convo

const sampleAuthor = "Colleague"

var sampleMessages = []Message{
	{sampleAuthor, "Test...Test...Test..."},
	{sampleAuthor, "List of Android versions:\n" +
		"Android KitKat (API 19)\n" +
		"Android Lollipop (API 21)\n" +
		"Android Marshmallow (API 23)\n" +
		"Android Nougat (API 24)\n" +
		"Android Oreo (API 26)\n" +
		"Android Pie (API 28)\n" +
		"Android 10 (API 29)\n" +
		"Android 11 (API 30)\n" +
		"Android 12 (API 31)\n"},
	{sampleAuthor, "I think Kotlin is my favorite programming language.\n" +
		"It's so much fun!"},
	{sampleAuthor, "Searching for alternatives to XML layouts..."},
	{sampleAuthor, "Hey, take a look at Jetpack Compose, it's great!\n" +
		"It's the Android's modern toolkit for building native UI." +
		"It simplifies and accelerates UI development on Android." +
		"Less code, powerful tools, and intuitive Kotlin APIs :)"},
	{sampleAuthor, "It's available from API 21+ :)"},
	{sampleAuthor, "Writing Kotlin for UI seems so natural, Compose where have you been all my life?"},
	{sampleAuthor, "Android Studio next version's name is Arctic Fox"},
	{sampleAuthor, "Android Studio Arctic Fox tooling for Compose is top notch ^_^"},
	{sampleAuthor, "I didn't know you can now run the emulator directly from Android Studio"},
	{sampleAuthor, "Compose Previews are great to check quickly how a composable layout looks like"},
	{sampleAuthor, "Previews are also interactive after enabling the experimental setting"},
	{sampleAuthor, "Have you tried writing build.gradle with KTS?"},
}

var sample = NewConversation(sampleMessages...)

// SampleConversation returns the built-in demo conversation.
func SampleConversation() Conversation { return sample }

// SampleMessage returns the single message used by card previews.
func SampleMessage() Message {
	return Message{Author: sampleAuthor, Body: "Hey, take a look at Jetpack Compose, it's great!"}
}
